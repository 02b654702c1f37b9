// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package game

//go:generate mockgen -destination=mocks_test.go -package $GOPACKAGE . Participant,Coordinator,Observer
//go:generate mockgen -destination=mock_mission_test.go -package $GOPACKAGE github.com/ChainSafe/resistance/lib/mission Mission
