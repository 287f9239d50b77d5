package component

// Sink is a looping sound that pauses in place. *audio.Player satisfies it.
type Sink interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
}

// SoundSpawner plays fire-and-forget sounds by name.
type SoundSpawner interface {
	PlayOneShot(name string, volume float64)
}

// LoopAudio attaches a spatial looping sink to an entity.
type LoopAudio struct {
	Sink   Sink
	Volume float64
	// Range is the distance at which the sink falls to its quietest; 0 disables falloff.
	Range float64
}

// Listener marks the entity whose position spatial audio is heard from.
type Listener struct{}
