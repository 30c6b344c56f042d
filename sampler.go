package iaps

import (
	"fmt"
	"math/rand"
	"time"
)

// Sampler draws pictures from a catalog uniformly at random without
// replacement. A Sampler is not safe for concurrent use; give each
// goroutine its own.
type Sampler struct {
	catalog *Catalog
	rng     *rand.Rand
}

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithSeed fixes the random source so a draw can be reproduced from an
// experiment log.
func WithSeed(seed int64) SamplerOption {
	return func(s *Sampler) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// NewSampler creates a sampler over a catalog. Without options the draw
// order differs between runs.
func NewSampler(c *Catalog, opts ...SamplerOption) *Sampler {
	s := &Sampler{
		catalog: c,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sample draws n distinct records matching a filter, each matching record
// equally likely. It fails with ErrInvalidCategory for an undefined
// filter no matter what n is, and with ErrInsufficientData when fewer
// than n records match; no partial draw is ever returned. n of zero
// yields an empty draw.
func (s *Sampler) Sample(f Filter, n int) ([]Record, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("sample size must not be negative, got %d", n)
	}

	matching := s.catalog.Filter(f)
	if len(matching) < n {
		return nil, &SampleSizeError{
			Requested: n,
			Available: len(matching),
			Filter:    f.String(),
		}
	}

	s.rng.Shuffle(len(matching), func(i, j int) {
		matching[i], matching[j] = matching[j], matching[i]
	})

	drawn := make([]Record, n)
	copy(drawn, matching[:n])
	return drawn, nil
}

// SamplePaths draws like Sample but returns image file paths, ready to
// hand to image tooling. The files themselves are not checked.
func (s *Sampler) SamplePaths(f Filter, n int) ([]string, error) {
	records, err := s.Sample(f, n)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(records))
	for i, r := range records {
		paths[i] = s.catalog.ImagePath(r)
	}
	return paths, nil
}

// SamplePositiveImages draws n pictures rated positive (mean valence of
// at least 7.0) from the default catalog and returns their file paths in
// draw order.
func SamplePositiveImages(n int, opts ...SamplerOption) ([]string, error) {
	return sampleDefault(Positive, n, opts)
}

// SampleNegativeImages draws n pictures rated negative (mean valence of
// at most 3.0) from the default catalog.
func SampleNegativeImages(n int, opts ...SamplerOption) ([]string, error) {
	return sampleDefault(Negative, n, opts)
}

// SampleNeutralImages draws n pictures rated neutral (mean valence inside
// [4.0, 6.0]) from the default catalog.
func SampleNeutralImages(n int, opts ...SamplerOption) ([]string, error) {
	return sampleDefault(Neutral, n, opts)
}

// SampleImages draws n pictures matching a filter expression, an affect
// category label or low:high valence bounds, from the default catalog.
// Studies cutting the scale somewhere unusual pass bounds instead of a
// label: SampleImages("7.5:9", n) is a stricter positive set.
func SampleImages(filter string, n int, opts ...SamplerOption) ([]string, error) {
	f, err := ParseFilter(filter)
	if err != nil {
		return nil, err
	}
	return sampleDefault(f, n, opts)
}

func sampleDefault(f Filter, n int, opts []SamplerOption) ([]string, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return NewSampler(c, opts...).SamplePaths(f, n)
}
