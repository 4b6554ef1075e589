package core

// Sounds is the audio a platform plays for game events.
type Sounds interface {
	PlayCollect()
	PlayJump()
	PlayClear()
}

// Silence is a Sounds that plays nothing.
type Silence struct{}

func (Silence) PlayCollect() {}
func (Silence) PlayJump()    {}
func (Silence) PlayClear()   {}
