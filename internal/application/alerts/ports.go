package alerts

// ThresholdResolver resuelve el umbral de stock mínimo para una categoría de
// producto. Colaborador de configuración inyectado: se carga una vez y se
// consulta muchas veces. Categoría sin configurar devuelve
// domain.ErrThresholdNotConfigured; la política ante ese error la decide el
// motor de alertas, nunca un default silencioso.
type ThresholdResolver interface {
	ThresholdFor(category string) (int64, error)
}
