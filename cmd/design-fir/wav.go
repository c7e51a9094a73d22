package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// Exported impulse responses use 24-bit mono PCM.
	wavBitDepth    = 24
	wavChannels    = 1
	wavAudioFormat = 1 // PCM

	// Peak normalization target, leaving headroom below full scale so
	// inspection tools do not flag clipping.
	wavPeakTarget = 0.999

	maxInt24 = 8388607.0
)

// writeWAV stores the coefficient buffer as a peak-normalized mono
// PCM file, one tap per sample frame.
func writeWAV(path string, h []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, wavBitDepth, wavChannels, wavAudioFormat)

	buf := &audio.IntBuffer{
		Data: tapsToPCM(h),
		Format: &audio.Format{
			NumChannels: wavChannels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: wavBitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding samples: %w", err)
	}

	return enc.Close()
}

// tapsToPCM converts coefficients to 24-bit integer samples, scaled so
// the largest magnitude tap sits just below full scale. An all-zero
// buffer converts to silence.
func tapsToPCM(h []float64) []int {
	var peak float64
	for _, v := range h {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	scale := 0.0
	if peak > 0 {
		scale = wavPeakTarget * maxInt24 / peak
	}

	data := make([]int, len(h))
	for i, v := range h {
		data[i] = int(math.Round(v * scale))
	}
	return data
}
