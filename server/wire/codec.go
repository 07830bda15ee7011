// Package wire decodes table views from the poker engine and encodes the
// moves sent back, on top of the generated messages in package pb.
package wire

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"

	pb "llamabot/server/pb"
)

// ErrMalformed is wrapped by every decoding failure.
var ErrMalformed = errors.New("wire: malformed message")

// UnmarshalClientState decodes a ClientState. Unknown fields, including
// known field numbers sent with another wire type, are kept as unknown.
func UnmarshalClientState(b []byte) (*pb.ClientState, error) {
	st := &pb.ClientState{}
	if err := proto.Unmarshal(b, st); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return st, nil
}

// UnmarshalAction decodes an Action.
func UnmarshalAction(b []byte) (*pb.Action, error) {
	a := &pb.Action{}
	if err := proto.Unmarshal(b, a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return a, nil
}

// MarshalAction encodes a move for the engine.
func MarshalAction(a *pb.Action) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(a)
}

// ValidAction reports whether a is one of the four known moves.
func ValidAction(a pb.ActionType) bool {
	_, ok := pb.ActionType_name[int32(a)]
	return ok
}

// Hero returns the player entry whose user id matches the view's player id,
// or nil.
func Hero(st *pb.ClientState) *pb.Player {
	for _, p := range st.GetPlayers() {
		if p != nil && p.GetUserId() == st.GetPlayerId() {
			return p
		}
	}
	return nil
}
