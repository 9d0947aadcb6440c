package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarenroll/internal/domain"
	"solarenroll/internal/services/address"
)

type backend struct {
	*httptest.Server
	created []domain.SubscriberData
	patches []map[string]any
	deleted []string
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{}
	sub := domain.Subscriber{
		SubscriberData: domain.SubscriberData{
			FirstName: "Jane", LastName: "Doe", Address: "1 Main St", City: "Newark",
			State: "NJ", ZipCode: "07102", Utility: domain.UtilityPSEG,
		},
		ID:        42,
		CreatedAt: "2026-01-02T03:04:05Z",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /api/utilities/{zip}/", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("zip") == "07102" {
			writeJSON(w, http.StatusOK, domain.UtilityInfo{Found: true, Utility: domain.UtilityPSEG, ZipCode: "07102"})
			return
		}
		writeJSON(w, http.StatusOK, domain.UtilityInfo{Found: false, Message: "No utility found for ZIP code " + r.PathValue("zip")})
	})
	mux.HandleFunc("POST /api/validate-address/", func(w http.ResponseWriter, r *http.Request) {
		var req domain.AddressValidationRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Address == "nowhere" {
			writeJSON(w, http.StatusOK, domain.AddressValidationResponse{Valid: false, Message: "No match"})
			return
		}
		writeJSON(w, http.StatusOK, domain.AddressValidationResponse{
			Valid:            true,
			FormattedAddress: strings.ToUpper(req.Address + ", " + req.City + ", " + req.State + ", " + req.ZipCode),
			Coordinates:      &domain.Coordinates{X: -74.17, Y: 40.73},
		})
	})
	mux.HandleFunc("POST /api/subscribers/", func(w http.ResponseWriter, r *http.Request) {
		var data domain.SubscriberData
		_ = json.NewDecoder(r.Body).Decode(&data)
		b.created = append(b.created, data)
		writeJSON(w, http.StatusCreated, domain.SubscriberCreateResponse{
			Success: true, SubscriberID: 42, Message: "Subscriber created successfully",
		})
	})
	mux.HandleFunc("GET /api/subscribers/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.SubscriberList{Count: 1, Results: []domain.Subscriber{sub}})
	})
	mux.HandleFunc("GET /api/subscribers/{id}/", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "42" {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
			return
		}
		writeJSON(w, http.StatusOK, sub)
	})
	mux.HandleFunc("PATCH /api/subscribers/{id}/", func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]any
		_ = json.NewDecoder(r.Body).Decode(&patch)
		b.patches = append(b.patches, patch)
		updated := sub
		if v, ok := patch["city"].(string); ok {
			updated.City = v
		}
		writeJSON(w, http.StatusOK, updated)
	})
	mux.HandleFunc("DELETE /api/subscribers/{id}/", func(w http.ResponseWriter, r *http.Request) {
		b.deleted = append(b.deleted, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	b.Server = httptest.NewServer(mux)
	t.Cleanup(b.Close)
	return b
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// run executes the CLI against b with a config path in a temp dir.
func run(t *testing.T, b *backend, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	base := []string{"--config", cfgPath}
	if b != nil {
		base = append(base, "--api-url", b.URL)
	}
	root.SetArgs(append(base, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestHealth(t *testing.T) {
	b := newBackend(t)
	out, err := run(t, b, "health")
	require.NoError(t, err)
	assert.Equal(t, b.URL+": ok\n", out)
}

func TestUtility(t *testing.T) {
	b := newBackend(t)

	out, err := run(t, b, "utility", "07102")
	require.NoError(t, err)
	assert.Equal(t, "07102: PSE&G (PSEG)\n", out)

	out, err = run(t, b, "utility", "99999")
	require.NoError(t, err)
	assert.Equal(t, "No utility found for ZIP code 99999\n", out)
}

func TestUtility_RejectsShortZip(t *testing.T) {
	b := newBackend(t)
	for _, zip := range []string{"0710", "0710a"} {
		_, err := run(t, b, "utility", zip)
		require.Error(t, err, zip)
		assert.Contains(t, err.Error(), "ZIP code must be 5 digits")
	}
}

func TestValidateAddress(t *testing.T) {
	b := newBackend(t)

	out, err := run(t, b, "validate-address", "--address", "1 Main St", "--city", "Newark", "--zip", "07102")
	require.NoError(t, err)
	assert.Contains(t, out, "Address validated: 1 MAIN ST, NEWARK, NJ, 07102")
	assert.Contains(t, out, "Coordinates: 40.730000, -74.170000")

	out, err = run(t, b, "validate-address", "--address", "nowhere", "--city", "Newark", "--zip", "07102")
	require.ErrorIs(t, err, address.ErrNotValidated)
	assert.Contains(t, out, address.MsgNotValidated)
	assert.Contains(t, out, "No match")
}

func TestEnroll_Headless(t *testing.T) {
	b := newBackend(t)
	answers := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(answers, []byte(`
personal:
  first_name: Jane
  last_name: Doe
address:
  address: 1 Main St
  city: Newark
  zip_code: "07102"
utility:
  utility_account_number: "1234567890"
validate_address: true
`), 0o600))

	out, err := run(t, b, "enroll", "--answers", answers)
	require.NoError(t, err)
	assert.Contains(t, out, "Address validated: 1 MAIN ST, NEWARK, NJ, 07102")
	assert.Contains(t, out, "Enrollment Successful!")
	assert.Contains(t, out, "Subscriber ID: 42")

	require.Len(t, b.created, 1)
	assert.Equal(t, domain.UtilityPSEG, b.created[0].Utility)
	assert.Equal(t, "1234567890", b.created[0].UtilityAccountNumber)
}

func TestEnroll_HeadlessInvalidAccountSendsNothing(t *testing.T) {
	b := newBackend(t)
	answers := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(answers, []byte(`
personal: {first_name: Jane, last_name: Doe}
address: {address: 1 Main St, city: Newark, zip_code: "07102"}
utility: {utility_account_number: "123"}
`), 0o600))

	_, err := run(t, b, "enroll", "--answers", answers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PSE&G account numbers must be 10 digits")
	assert.Empty(t, b.created)
}

func TestSubscribers(t *testing.T) {
	b := newBackend(t)

	out, err := run(t, b, "subscribers", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "1 subscriber(s)")

	out, err = run(t, b, "subscribers", "get", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "PSE&G")

	_, err = run(t, b, "subscribers", "get", "7")
	require.Error(t, err)
	assert.Equal(t, "Not found.", err.Error())

	out, err = run(t, b, "subscribers", "update", "42", "--city", "Hoboken")
	require.NoError(t, err)
	assert.Contains(t, out, "Hoboken")
	require.Len(t, b.patches, 1)
	assert.Equal(t, map[string]any{"city": "Hoboken"}, b.patches[0])

	_, err = run(t, b, "subscribers", "update", "42")
	require.Error(t, err)

	out, err = run(t, b, "subscribers", "delete", "42")
	require.NoError(t, err)
	assert.Equal(t, "deleted subscriber 42\n", out)
	assert.Equal(t, []string{"42"}, b.deleted)
}

func TestSubscribersGet_JSON(t *testing.T) {
	b := newBackend(t)
	out, err := run(t, b, "subscribers", "get", "42", "--json")
	require.NoError(t, err)

	var s domain.Subscriber
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, domain.SubscriberID(42), s.ID)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", path, "config", "init"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_url: http://localhost:8000")
	assert.Contains(t, string(data), "timeout: 10s")

	root = newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--config", path, "config", "init"})
	err = root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	root = newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--config", path, "config", "init", "--force"})
	require.NoError(t, root.Execute())
}
