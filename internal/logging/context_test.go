// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateIDs(t *testing.T) {
	t.Parallel()

	corr := GenerateCorrelationID()
	assert.Len(t, corr, 8)
	assert.NotEqual(t, corr, GenerateCorrelationID())

	req := GenerateRequestID()
	_, err := uuid.Parse(req)
	assert.NoError(t, err)
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))
	assert.Empty(t, CorrelationIDFromContext(ctx))

	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")

	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, "corr-1", CorrelationIDFromContext(ctx))

	ctx = ContextWithNewCorrelationID(ctx)
	assert.Len(t, CorrelationIDFromContext(ctx), 8)
}

func TestCtx_AddsIDs(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { SetLogger(original) })

	ctx := ContextWithRequestID(context.Background(), "req-42")
	ctx = ContextWithCorrelationID(ctx, "abcd1234")

	Ctx(ctx).Info().Msg("handled")

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"correlation_id":"abcd1234"`)
}

func TestCtx_EmptyContext(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { SetLogger(original) })

	CtxErr(context.Background(), assert.AnError).Msg("failed")

	out := buf.String()
	assert.NotContains(t, out, "request_id")
	assert.Contains(t, out, assert.AnError.Error())
}
