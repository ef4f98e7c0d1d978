package trackers

import (
	_ "embed"
	"fmt"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"dayboard/internal/core"
)

//go:embed seeds.yaml
var seedsYAML []byte

type seedFile struct {
	Reminders []struct {
		Text string `yaml:"text"`
	} `yaml:"reminders"`
	Quotes []struct {
		Text string `yaml:"text"`
	} `yaml:"quotes"`
}

var (
	seedOnce   sync.Once
	seedErr    error
	seedParsed seedFile
)

func loadSeeds() (seedFile, error) {
	seedOnce.Do(func() {
		seedErr = yaml.Unmarshal(seedsYAML, &seedParsed)
	})
	if seedErr != nil {
		return seedFile{}, fmt.Errorf("parse embedded seeds: %w", seedErr)
	}
	return seedParsed, nil
}

// seedReminders returns the default reminder set for a never-written store.
func seedReminders() []core.Reminder {
	seeds, err := loadSeeds()
	if err != nil {
		return nil
	}
	now := time.Now().UnixMilli()
	out := make([]core.Reminder, 0, len(seeds.Reminders))
	for i, s := range seeds.Reminders {
		out = append(out, core.Reminder{
			ID:        strconv.Itoa(i + 1),
			Text:      s.Text,
			CreatedAt: now,
		})
	}
	return out
}

func seedQuotes() []core.Quote {
	seeds, err := loadSeeds()
	if err != nil {
		return nil
	}
	now := time.Now().UnixMilli()
	out := make([]core.Quote, 0, len(seeds.Quotes))
	for i, s := range seeds.Quotes {
		out = append(out, core.Quote{
			ID:        strconv.Itoa(i + 1),
			Text:      s.Text,
			CreatedAt: now,
		})
	}
	return out
}
