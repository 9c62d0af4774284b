package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoLifecycle(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, token := env.register(t, "John", "john@x.com", "Pa$$w0rd")

	// Create.
	rec := env.do(t, http.MethodPost, "/todos", token, map[string]any{"text": "write tests"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	todoID := created["id"].(string)
	assert.Equal(t, "write tests", created["text"])
	assert.Equal(t, false, created["done"])

	// List.
	rec = env.do(t, http.MethodGet, "/todos", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	// Show.
	rec = env.do(t, http.MethodGet, "/todos/"+todoID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Update.
	rec = env.do(t, http.MethodPut, "/todos/"+todoID, token, map[string]any{"done": true})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody(t, rec)
	assert.Equal(t, true, updated["done"])
	assert.Equal(t, "write tests", updated["text"])

	// Delete.
	rec = env.do(t, http.MethodDelete, "/todos/"+todoID, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/todos/"+todoID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTodoList_NewestFirst(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, token := env.register(t, "John", "john@x.com", "Pa$$w0rd")

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		rec := env.do(t, http.MethodPost, "/todos", token, map[string]any{"text": text})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/todos", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 3)

	assert.Equal(t, "third", list[0]["text"])
	assert.Equal(t, "second", list[1]["text"])
	assert.Equal(t, "first", list[2]["text"])
}

func TestTodoCreate_RequiresText(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, token := env.register(t, "John", "john@x.com", "Pa$$w0rd")

	rec := env.do(t, http.MethodPost, "/todos", token, map[string]any{"text": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestTodo_RequiresAuth(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/todos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTodo_ScopedToOwner(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, johnToken := env.register(t, "John", "john@x.com", "Pa$$w0rd")
	_, janeToken := env.register(t, "Jane", "jane@x.com", "Pa$$w0rd2")

	rec := env.do(t, http.MethodPost, "/todos", johnToken, map[string]any{"text": "john's secret"})
	require.Equal(t, http.StatusCreated, rec.Code)
	todoID := decodeBody(t, rec)["id"].(string)

	// Jane cannot see, update or delete John's todo; it reads as missing.
	rec = env.do(t, http.MethodGet, "/todos/"+todoID, janeToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPut, "/todos/"+todoID, janeToken, map[string]any{"done": true})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/todos/"+todoID, janeToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/todos", janeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
