package utils

import "time"

// Stats tracks population over a run
type Stats struct {
	Generations       int
	Population        int
	MinPopulation     int
	MaxPopulation     int
	AveragePopulation float64
	StartTime         time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the population of one rendered generation
func (s *Stats) Update(population int) {
	if s.Generations == 0 {
		s.MinPopulation = population
		s.MaxPopulation = population
	} else {
		s.MinPopulation = min(s.MinPopulation, population)
		s.MaxPopulation = max(s.MaxPopulation, population)
	}

	// Running mean over every recorded generation
	s.Generations++
	s.AveragePopulation += (float64(population) - s.AveragePopulation) / float64(s.Generations)
	s.Population = population
}

// Elapsed returns the time since the stats were created
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
