package thresholds_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutvikbarbhai/stockflow/internal/domain"
	"github.com/rutvikbarbhai/stockflow/internal/infrastructure/thresholds"
)

func writeThresholds(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolver_CargaYResuelve(t *testing.T) {
	path := writeThresholds(t, `
thresholds:
  electronics: 20
  grocery: 50
`)
	r, err := thresholds.New(path)
	require.NoError(t, err)

	v, err := r.ThresholdFor("electronics")
	require.NoError(t, err)
	assert.Equal(t, int64(20), v)

	v, err = r.ThresholdFor("grocery")
	require.NoError(t, err)
	assert.Equal(t, int64(50), v)
}

func TestResolver_CategoriaSinConfigurar_ErrorTipado(t *testing.T) {
	path := writeThresholds(t, "thresholds:\n  electronics: 20\n")
	r, err := thresholds.New(path)
	require.NoError(t, err)

	_, err = r.ThresholdFor("juguetes")
	assert.ErrorIs(t, err, domain.ErrThresholdNotConfigured)
}

func TestResolver_CategoriaConMayusculas_Resuelve(t *testing.T) {
	// Las claves del archivo se normalizan a minúsculas al cargar; la consulta
	// debe ser insensible a mayúsculas.
	path := writeThresholds(t, "thresholds:\n  Electronics: 20\n")
	r, err := thresholds.New(path)
	require.NoError(t, err)

	v, err := r.ThresholdFor("Electronics")
	require.NoError(t, err)
	assert.Equal(t, int64(20), v)
}

func TestResolver_ArchivoInexistente_Error(t *testing.T) {
	_, err := thresholds.New("/no/existe/thresholds.yaml")
	assert.Error(t, err)
}

func TestResolver_Reload_ActualizaUmbrales(t *testing.T) {
	path := writeThresholds(t, "thresholds:\n  electronics: 20\n")
	r, err := thresholds.New(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("thresholds:\n  electronics: 35\n"), 0o600))
	require.NoError(t, r.Reload())

	v, err := r.ThresholdFor("electronics")
	require.NoError(t, err)
	assert.Equal(t, int64(35), v)
}

func TestResolver_ReloadFallido_ConservaTablaAnterior(t *testing.T) {
	path := writeThresholds(t, "thresholds:\n  electronics: 20\n")
	r, err := thresholds.New(path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	assert.Error(t, r.Reload())

	// La tabla previa sigue vigente
	v, err := r.ThresholdFor("electronics")
	require.NoError(t, err)
	assert.Equal(t, int64(20), v)
}
