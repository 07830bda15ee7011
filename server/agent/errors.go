package agent

// Stage names a step of the move pipeline.
type Stage string

const (
	StageDecode   Stage = "decode"
	StageUpstream Stage = "upstream"
	StageParse    Stage = "parse"
	StageEncode   Stage = "encode"
)

// StageError carries the failing stage so the HTTP layer can pick a status
// code and message. Error() is the cause's text unchanged.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return e.Err.Error() }
func (e *StageError) Unwrap() error { return e.Err }

func Fail(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}
