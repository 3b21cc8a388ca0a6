// Package simulation contiene los dos motores de simulación (vendedor de periódicos e
// inventario de revisión periódica) y las utilidades para resumir y tabular sus resultados.
//
// Los motores son funciones puras: reciben la configuración y una fuente aleatoria
// explícita, nunca usan estado global del proceso.
package simulation

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// RandomSource entrega muestras de las distribuciones que usan los motores.
// Cada corrida debe recibir su propia fuente; compartirla entre corridas concurrentes
// rompe la reproducibilidad.
type RandomSource interface {
	Normal(mean, stddev float64) float64
	Exponential(mean float64) float64
}

// DistSource implementa RandomSource con gonum/distuv sobre un flujo math/rand/v2.
type DistSource struct {
	src rand.Source
}

// NewSource envuelve un flujo aleatorio cualquiera.
func NewSource(src rand.Source) *DistSource {
	return &DistSource{src: src}
}

// NewSeededSource crea una fuente PCG determinista a partir de una semilla.
func NewSeededSource(seed uint64) *DistSource {
	return NewSource(rand.NewPCG(seed, seed))
}

// Normal devuelve una muestra de Normal(mean, stddev).
func (s *DistSource) Normal(mean, stddev float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: stddev, Src: s.src}.Rand()
}

// Exponential devuelve una muestra de una exponencial con la media indicada (tasa = 1/mean).
func (s *DistSource) Exponential(mean float64) float64 {
	if mean == 0 {
		return 0
	}
	return distuv.Exponential{Rate: 1 / mean, Src: s.src}.Rand()
}
