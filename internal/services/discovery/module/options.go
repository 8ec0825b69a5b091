package module

import (
	"time"

	"issuehound/internal/platform/config"
)

// Options holds configuration settings for the discovery module
type Options struct {
	LabelSample     int
	LabelSampleAnon int
	LabelWidth      int

	LanguageSample     int
	LanguageSampleAnon int
	LanguageWidth      int

	TopRepos   int
	BatchPause time.Duration
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	df := cfg.Prefix("DISCOVERY_")
	return Options{
		LabelSample:        df.MayInt("LABEL_SAMPLE", 5),
		LabelSampleAnon:    df.MayInt("LABEL_SAMPLE_ANON", 2),
		LabelWidth:         df.MayInt("LABEL_WIDTH", 2),
		LanguageSample:     df.MayInt("LANGUAGE_SAMPLE", 10),
		LanguageSampleAnon: df.MayInt("LANGUAGE_SAMPLE_ANON", 3),
		LanguageWidth:      df.MayInt("LANGUAGE_WIDTH", 3),
		TopRepos:           df.MayInt("TOP_REPOS", 3),
		BatchPause:         df.MayDuration("BATCH_PAUSE", 100*time.Millisecond),
	}
}
