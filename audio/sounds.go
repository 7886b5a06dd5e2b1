package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/skater/constants"
	"github.com/lixenwraith/skater/core"
)

// CreateJumpSound generates a rising sweep for a jump
func CreateJumpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweep(constants.JumpSweepStartHz, constants.JumpSweepEndHz, constants.JumpSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.JumpSoundDuration, constants.JumpSoundAttack, constants.JumpSoundRelease, rate)
	return newVolume(shaped, 0.3*vol)
}

// CreateGemSound generates a two-note chime for a consumed gem
func CreateGemSound(rate beep.SampleRate, vol float64) beep.Streamer {
	first := constants.GemNoteSplit
	second := constants.GemSoundDuration - constants.GemNoteSplit

	n1 := NewOscillator(constants.GemFirstNoteHz, first, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, first, constants.GemSoundAttack, first/2, rate)

	n2 := NewOscillator(constants.GemSecondNoteHz, second, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, second, constants.GemSoundAttack, constants.GemSoundRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.6*vol)
}

// CreateLandSound generates a short scrape: noise over a low rumble
func CreateLandSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewOscillator(0, constants.LandSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.LandSoundDuration, constants.LandSoundAttack, constants.LandSoundRelease, rate)

	rumble := NewOscillator(80, constants.LandSoundDuration, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, constants.LandSoundDuration, constants.LandSoundAttack, constants.LandSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.25),
		newVolume(rumbleShaped, 0.4),
	)
	return newVolume(mixed, vol)
}

// CreateGameOverSound generates a falling saw tone
func CreateGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweep(constants.GameOverStartHz, constants.GameOverEndHz, constants.GameOverSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.GameOverSoundDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate)
	return newVolume(shaped, 0.4*vol)
}

// GetSoundEffect returns the streamer for sound, nil for unknown types
func GetSoundEffect(sound core.SoundType, rate beep.SampleRate, vol float64) beep.Streamer {
	switch sound {
	case core.SoundJump:
		return CreateJumpSound(rate, vol)
	case core.SoundGem:
		return CreateGemSound(rate, vol)
	case core.SoundLand:
		return CreateLandSound(rate, vol)
	case core.SoundGameOver:
		return CreateGameOverSound(rate, vol)
	default:
		return nil
	}
}
