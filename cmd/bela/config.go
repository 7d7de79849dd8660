package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/l0calh05t/bela-go"
)

// fileConfig is the TOML settings file schema. Pointer fields distinguish
// "absent" from zero so the file only overrides what it names.
type fileConfig struct {
	PeriodSize           *int     `toml:"period_size"`
	UseAnalog            *bool    `toml:"use_analog"`
	UseDigital           *bool    `toml:"use_digital"`
	AnalogInChannels     *int     `toml:"analog_in_channels"`
	AnalogOutChannels    *int     `toml:"analog_out_channels"`
	DigitalChannels      *int     `toml:"digital_channels"`
	BeginMuted           *bool    `toml:"begin_muted"`
	DACLevel             *float32 `toml:"dac_level"`
	ADCLevel             *float32 `toml:"adc_level"`
	HeadphoneLevel       *float32 `toml:"headphone_level"`
	DetectUnderruns      *bool    `toml:"detect_underruns"`
	Verbose              *bool    `toml:"verbose"`
	EnableLED            *bool    `toml:"enable_led"`
	StopButtonPin        *int     `toml:"stop_button_pin"`
	HighPerformanceMode  *bool    `toml:"high_performance_mode"`
	Interleave           *bool    `toml:"interleave"`
	AnalogOutputsPersist *bool    `toml:"analog_outputs_persist"`
	UniformSampleRate    *bool    `toml:"uniform_sample_rate"`
	Board                *string  `toml:"board"`
}

func applyConfigFile(b *bela.Bela, path string) error {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return err
	}
	return applyConfig(b, &cfg)
}

func applyConfig(b *bela.Bela, cfg *fileConfig) error {
	if cfg.PeriodSize != nil {
		b.PeriodSize(*cfg.PeriodSize)
	}
	if cfg.UseAnalog != nil {
		b.UseAnalog(*cfg.UseAnalog)
	}
	if cfg.UseDigital != nil {
		b.UseDigital(*cfg.UseDigital)
	}
	if cfg.AnalogInChannels != nil {
		b.NumAnalogInChannels(*cfg.AnalogInChannels)
	}
	if cfg.AnalogOutChannels != nil {
		b.NumAnalogOutChannels(*cfg.AnalogOutChannels)
	}
	if cfg.DigitalChannels != nil {
		b.NumDigitalChannels(*cfg.DigitalChannels)
	}
	if cfg.BeginMuted != nil {
		b.BeginMuted(*cfg.BeginMuted)
	}
	if cfg.DACLevel != nil {
		b.DACLevel(*cfg.DACLevel)
	}
	if cfg.ADCLevel != nil {
		b.ADCLevel(*cfg.ADCLevel)
	}
	if cfg.HeadphoneLevel != nil {
		b.HeadphoneLevel(*cfg.HeadphoneLevel)
	}
	if cfg.DetectUnderruns != nil {
		b.DetectUnderruns(*cfg.DetectUnderruns)
	}
	if cfg.Verbose != nil {
		b.Verbose(*cfg.Verbose)
	}
	if cfg.EnableLED != nil {
		b.EnableLED(*cfg.EnableLED)
	}
	if cfg.StopButtonPin != nil {
		b.StopButtonPin(*cfg.StopButtonPin)
	}
	if cfg.HighPerformanceMode != nil {
		b.HighPerformanceMode(*cfg.HighPerformanceMode)
	}
	if cfg.Interleave != nil {
		b.Interleave(*cfg.Interleave)
	}
	if cfg.AnalogOutputsPersist != nil {
		b.AnalogOutputsPersist(*cfg.AnalogOutputsPersist)
	}
	if cfg.UniformSampleRate != nil {
		b.UniformSampleRate(*cfg.UniformSampleRate)
	}
	if cfg.Board != nil {
		hw, err := parseBoard(*cfg.Board)
		if err != nil {
			return err
		}
		b.Board(hw)
	}
	return nil
}

func parseBoard(name string) (bela.Hardware, error) {
	switch name {
	case "", "none":
		return bela.NoHw, nil
	case "Bela":
		return bela.BelaBoard, nil
	case "BelaMini":
		return bela.BelaMini, nil
	case "Salt":
		return bela.Salt, nil
	case "CtagFace":
		return bela.CtagFace, nil
	case "CtagBeast":
		return bela.CtagBeast, nil
	case "CtagFaceBela":
		return bela.CtagFaceBela, nil
	case "CtagBeastBela":
		return bela.CtagBeastBela, nil
	default:
		return bela.NoHw, fmt.Errorf("unknown board %q", name)
	}
}
