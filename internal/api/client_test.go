package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarenroll/internal/api"
	"solarenroll/internal/domain"
)

func newServer(t *testing.T, h http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return api.New(srv.URL+"/", srv.Client(), nil)
}

func TestURL_JoinsBaseAndEndpoint(t *testing.T) {
	c := api.New("http://localhost:8000/", nil, nil)
	assert.Equal(t, "http://localhost:8000/api/subscribers/", c.URL(api.EndpointSubscribers))
	assert.Equal(t, "http://localhost:8000/api/health/", c.URL("api/health/"))
}

func TestLookupUtility_OK(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/utilities/07102/", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(api.RequestIDHeader))
		_, _ = io.WriteString(w, `{"found":true,"utility":"PSEG","city":"Newark","zip_code":"07102"}`)
	})

	info, err := c.LookupUtility(context.Background(), "07102")
	require.NoError(t, err)
	assert.True(t, info.Found)
	assert.Equal(t, domain.UtilityPSEG, info.Utility)
	assert.Equal(t, "Newark", info.City)
}

func TestCreateSubscriber_SendsJSONAndOmitsEmptyOptionals(t *testing.T) {
	var got map[string]any
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"success":true,"subscriber_id":7,"message":"ok"}`)
	})

	resp, err := c.CreateSubscriber(context.Background(), domain.SubscriberData{
		FirstName: "Jane",
		LastName:  "Doe",
		Address:   "1 Main St",
		City:      "Newark",
		State:     "NJ",
		ZipCode:   "07102",
		Utility:   domain.UtilityPSEG,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, domain.SubscriberID(7), resp.SubscriberID)

	assert.Equal(t, "PSEG", got["utility"])
	assert.NotContains(t, got, "utility_account_number")
	assert.NotContains(t, got, "assistance_program")
	assert.NotContains(t, got, "email")
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message wins", http.StatusBadRequest, `{"message":"bad zip","detail":"ignored"}`, "bad zip"},
		{"detail fallback", http.StatusNotFound, `{"detail":"Not found."}`, "Not found."},
		{"empty body", http.StatusInternalServerError, ``, "HTTP 500"},
		{"unparsable body", http.StatusBadGateway, `<html>oops</html>`, "HTTP 502"},
		{"no message fields", http.StatusBadRequest, `{"zip_code":["ZIP code must be 5 digits"]}`, "HTTP 400"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})
			_, err := c.GetSubscriber(context.Background(), 1)
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
			assert.True(t, api.IsTransport(err))
			assert.Equal(t, tc.status, api.StatusCode(err))
		})
	}
}

func TestErrorFields(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"invalid","errors":{"zip_code":["must be 5 digits"]}}`)
	})
	_, err := c.CreateSubscriber(context.Background(), domain.SubscriberData{})

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, []string{"must be 5 digits"}, apiErr.Fields["zip_code"])
}

func TestNetworkFailure_IsUnexpected(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := api.New(base, nil, nil)
	_, err := c.LookupUtility(context.Background(), "07102")
	require.Error(t, err)
	assert.Equal(t, api.MsgUnexpected, err.Error())
	assert.ErrorIs(t, err, api.ErrUnexpected)
	assert.Equal(t, 0, api.StatusCode(err))
}

func TestUndecodableSuccessBody_IsUnexpected(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})
	_, err := c.Health(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnexpected)
}

func TestDeleteSubscriber_AcceptsNoContent(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/subscribers/42/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, c.DeleteSubscriber(context.Background(), 42))
}

func TestUpdateSubscriber_SendsOnlySetFields(t *testing.T) {
	var got map[string]any
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"id":3,"first_name":"Jane","city":"Trenton"}`)
	})
	city := "Trenton"
	sub, err := c.UpdateSubscriber(context.Background(), 3, domain.SubscriberPatch{City: &city})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"city": "Trenton"}, got)
	assert.Equal(t, domain.SubscriberID(3), sub.ID)
	assert.Equal(t, "Trenton", sub.City)
}

func TestListSubscribers(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"count":1,"results":[{"id":1,"first_name":"Jane","utility":"JCPL"}]}`)
	})
	list, err := c.ListSubscribers(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Results, 1)
	assert.Equal(t, domain.UtilityJCPL, list.Results[0].Utility)
}
