// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

//go:generate mockgen -destination=logger_mock_test.go -package $GOPACKAGE . Logger
//go:generate mockgen -destination=runner_mock_test.go -package $GOPACKAGE . Runner
