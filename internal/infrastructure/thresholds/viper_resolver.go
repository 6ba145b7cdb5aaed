// Package thresholds resuelve umbrales de stock bajo por categoría desde un
// archivo de configuración recargable.
package thresholds

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/rutvikbarbhai/stockflow/internal/application/alerts"
	"github.com/rutvikbarbhai/stockflow/internal/domain"
)

var _ alerts.ThresholdResolver = (*Resolver)(nil)

// Resolver carga umbrales por categoría desde un archivo YAML bajo la clave
// "thresholds". Reload es seguro para uso concurrente con ThresholdFor.
type Resolver struct {
	mu         sync.RWMutex
	path       string
	byCategory map[string]int64
}

// New construye el resolver y hace la carga inicial del archivo.
func New(path string) (*Resolver, error) {
	r := &Resolver{path: path}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload relee el archivo de umbrales. Si falla, la tabla anterior se conserva.
func (r *Resolver) Reload() error {
	v := viper.New()
	v.SetConfigFile(r.path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("leer archivo de umbrales: %w", err)
	}
	raw := v.GetStringMap("thresholds")
	table := make(map[string]int64, len(raw))
	for category := range raw {
		// viper normaliza las claves a minúsculas al leer el mapa.
		table[category] = v.GetInt64("thresholds." + category)
	}
	r.mu.Lock()
	r.byCategory = table
	r.mu.Unlock()
	return nil
}

// ThresholdFor devuelve el umbral configurado para la categoría, o
// domain.ErrThresholdNotConfigured si no existe entrada.
func (r *Resolver) ThresholdFor(category string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byCategory[strings.ToLower(category)]
	if !ok {
		return 0, fmt.Errorf("categoría %q: %w", category, domain.ErrThresholdNotConfigured)
	}
	return t, nil
}
