package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutvikbarbhai/stockflow/internal/application/dto"
	apphttp "github.com/rutvikbarbhai/stockflow/internal/interfaces/http"
)

// fakeLowStock captura los argumentos y devuelve una respuesta fija.
type fakeLowStock struct {
	lastCompanyID  string
	lastWindowDays int
	response       *dto.LowStockAlertsResponse
}

func (f *fakeLowStock) LowStockAlerts(ctx context.Context, companyID string, windowDays int) (*dto.LowStockAlertsResponse, error) {
	f.lastCompanyID = companyID
	f.lastWindowDays = windowDays
	if f.response == nil {
		return &dto.LowStockAlertsResponse{Alerts: []dto.LowStockAlertDTO{}}, nil
	}
	return f.response, nil
}

func buildAlertApp(svc *fakeLowStock) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewAlertHandler(svc, 30)
	app.Get("/api/companies/:company_id/alerts/low-stock",
		apphttp.AuthMiddleware(testJWTSecret), handler.LowStock)
	return app
}

func getAlerts(t *testing.T, app *fiber.App, companyID, query string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/companies/"+companyID+"/alerts/low-stock"+query, nil)
	req.Header.Set("Authorization", validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAlertHandler_UsaVentanaPorDefecto(t *testing.T) {
	svc := &fakeLowStock{}
	app := buildAlertApp(svc)

	resp := getAlerts(t, app, testCompanyID, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testCompanyID, svc.lastCompanyID)
	assert.Equal(t, 30, svc.lastWindowDays)
}

func TestAlertHandler_VentanaPorQuery(t *testing.T) {
	svc := &fakeLowStock{}
	app := buildAlertApp(svc)

	resp := getAlerts(t, app, testCompanyID, "?window_days=7")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 7, svc.lastWindowDays)
}

func TestAlertHandler_EmpresaAjena_Retorna403(t *testing.T) {
	// El token acota el acceso a su propia empresa; pedir las alertas de otra
	// empresa es 403, no una lista vacía.
	svc := &fakeLowStock{}
	app := buildAlertApp(svc)

	resp := getAlerts(t, app, "99999999-9999-9999-9999-999999999999", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAlertHandler_SerializaNullsExplicitos(t *testing.T) {
	// days_until_stockout y supplier deben aparecer como null (no omitirse)
	// cuando la proyección es indeterminada o no hay proveedor.
	svc := &fakeLowStock{response: &dto.LowStockAlertsResponse{
		Alerts: []dto.LowStockAlertDTO{{
			ProductID:    "p1",
			SKU:          "SKU-1",
			WarehouseID:  "w1",
			CurrentStock: 5,
			Threshold:    20,
		}},
		TotalAlerts: 1,
	}}
	app := buildAlertApp(svc)

	resp := getAlerts(t, app, testCompanyID, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	alerts, ok := body["alerts"].([]any)
	require.True(t, ok)
	require.Len(t, alerts, 1)

	alert := alerts[0].(map[string]any)
	v, present := alert["days_until_stockout"]
	assert.True(t, present, "days_until_stockout debe estar presente")
	assert.Nil(t, v, "proyección indeterminada debe ser null")
	v, present = alert["supplier"]
	assert.True(t, present, "supplier debe estar presente")
	assert.Nil(t, v)
}
