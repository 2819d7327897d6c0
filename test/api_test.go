//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/trainlog/internal/client"
	"github.com/2beens/trainlog/internal/middleware"
	"github.com/2beens/trainlog/internal/trainlog"

	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) apiClient() *client.Client {
	return client.NewClient(serverEndpoint, testToken, s.httpClient)
}

// doJSON sends body as JSON, checks the status and decodes the answer into
// out, when given.
func (s *IntegrationTestSuite) doJSON(
	ctx context.Context,
	method, path string,
	body any,
	expectedStatus int,
	out any,
) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.TokenHeader, testToken)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode, "%s %s: %s", method, path, respBytes)

	if out != nil {
		require.NoError(t, json.Unmarshal(respBytes, out))
	}
}

func (s *IntegrationTestSuite) addGoal(ctx context.Context, name, color string) trainlog.Goal {
	var goal trainlog.Goal
	s.doJSON(ctx, http.MethodPost, "/api/goals", trainlog.AddGoalRequest{Name: name, Color: color}, http.StatusCreated, &goal)
	return goal
}

func (s *IntegrationTestSuite) addExercise(ctx context.Context, name string) trainlog.Exercise {
	var exercise trainlog.Exercise
	s.doJSON(ctx, http.MethodPost, "/api/exercises", trainlog.ExerciseNameRequest{Name: name}, http.StatusCreated, &exercise)
	return exercise
}

func (s *IntegrationTestSuite) linkExercise(ctx context.Context, goalID, exerciseID int) {
	s.doJSON(
		ctx,
		http.MethodPost, fmt.Sprintf("/api/goals/%d/exercises", goalID),
		trainlog.LinkExerciseRequest{ExerciseID: exerciseID},
		http.StatusCreated, nil,
	)
}

func ptr[T any](v T) *T {
	return &v
}
