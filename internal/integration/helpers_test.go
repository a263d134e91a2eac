package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp":      {},
	"requestId":      {},
	"expirationTime": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func (s *BaseSuite) seedRoom(name string, rows, columns int) int {
	var id int
	err := s.app.DB.QueryRow(context.Background(),
		"INSERT INTO rooms (name, row_count, column_count) VALUES ($1, $2, $3) RETURNING id",
		name, rows, columns).Scan(&id)
	require.NoError(s.T(), err)

	return id
}

func (s *BaseSuite) seedMovie(title string, duration int) int {
	var id int
	err := s.app.DB.QueryRow(context.Background(),
		"INSERT INTO movies (title, duration_minutes) VALUES ($1, $2) RETURNING id",
		title, duration).Scan(&id)
	require.NoError(s.T(), err)

	return id
}

func (s *BaseSuite) seedScreening(movieID, roomID int, startTime time.Time) int {
	var id int
	err := s.app.DB.QueryRow(context.Background(),
		"INSERT INTO screenings (movie_id, room_id, start_time) VALUES ($1, $2, $3) RETURNING id",
		movieID, roomID, startTime).Scan(&id)
	require.NoError(s.T(), err)

	return id
}
