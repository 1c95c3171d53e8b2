package trend

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
)

const (
	// DefaultPoints - длина ряда, если количество точек не задано
	DefaultPoints = 7
	// DefaultJitter - разброс ±5% от текущей стоимости
	DefaultJitter = 0.05
)

// Source - источник случайных чисел в [0, 1)
type Source interface {
	Float64() float64
}

// Clock - источник текущего времени
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Synthesizer - строит синтетический ряд стоимости портфеля.
// Это не история цен: ряд нужен только для графика.
type Synthesizer struct {
	src    Source
	clock  Clock
	jitter float64
	loc    *time.Location
}

// NewSynthesizer - src и clock могут быть nil, тогда берутся math/rand/v2 и системное время.
// Отрицательный или NaN jitter заменяется на DefaultJitter.
func NewSynthesizer(src Source, clock Clock, jitter float64, loc *time.Location) *Synthesizer {
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if clock == nil {
		clock = realClock{}
	}
	if jitter < 0 || math.IsNaN(jitter) {
		jitter = DefaultJitter
	}
	if loc == nil {
		loc = time.Local
	}
	return &Synthesizer{src: src, clock: clock, jitter: jitter, loc: loc}
}

// Synthesize - n точек по дням от today-(n-1) до today по возрастанию.
// Последняя точка равна total, остальные total*(1+j), j равномерно в [-jitter, +jitter].
func (s *Synthesizer) Synthesize(total float64, n int) []domain.TrendPoint {
	if n <= 0 {
		n = DefaultPoints
	}

	now := s.clock.Now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	points := make([]domain.TrendPoint, n)
	for i := 0; i < n; i++ {
		value := total
		if i < n-1 {
			j := (s.src.Float64()*2 - 1) * s.jitter
			value = total * (1 + j)
		}
		points[i] = domain.TrendPoint{
			Date:       today.AddDate(0, 0, i-(n-1)),
			TotalValue: value,
		}
	}
	return points
}
