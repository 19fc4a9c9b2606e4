// Package combatv1 contains the CombatService protobuf definitions and
// their generated Go bindings.
//
//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative combat.proto
package combatv1
