package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aryawidjaya/gasstation-app/controllers"
)

func setupEmployeeRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	employeeCtrl := controllers.NewEmployeeController(db)
	r.POST("/register", employeeCtrl.Register)
	r.POST("/login", employeeCtrl.Login)
	return r
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	r := setupEmployeeRouter(db)

	payload := map[string]string{
		"full_name": "Jane Smith",
		"email":     "jane@example.com",
		"password":  "secret123",
		"role":      "cashier",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	login, _ := json.Marshal(map[string]string{"email": "jane@example.com", "password": "secret123"})
	req = httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(login))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)
	assert.Equal(t, "cashier", resp.Data.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	r := setupEmployeeRouter(db)

	payload, _ := json.Marshal(map[string]string{
		"full_name": "Jane Smith",
		"email":     "jane2@example.com",
		"password":  "secret123",
		"role":      "cashier",
	})
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	login, _ := json.Marshal(map[string]string{"email": "jane2@example.com", "password": "wrong"})
	req = httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(login))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
