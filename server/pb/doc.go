// Package pb holds the messages exchanged with the poker engine, generated
// from proto/*.proto.
package pb

//go:generate protoc -I ../../proto --go_out=. --go_opt=paths=source_relative card.proto game_state.proto player.proto client_state.proto
