package ratelimit

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS ai_rate_limits (
	user_id    text             NOT NULL,
	action     text             NOT NULL,
	tokens     double precision NOT NULL,
	updated_at timestamptz      NOT NULL DEFAULT now(),
	PRIMARY KEY (user_id, action)
)`

// Bucket refills capacity tokens per window, continuously. Each call spends
// one token when at least one is available.
const createFunctionSQL = `
CREATE OR REPLACE FUNCTION check_ai_rate_limit(
	p_user_id text,
	p_action text,
	p_capacity integer,
	p_window_seconds integer
) RETURNS TABLE (allowed boolean, remaining integer, reset_at timestamptz)
LANGUAGE plpgsql AS $$
DECLARE
	v_now     timestamptz      := clock_timestamp();
	v_rate    double precision := GREATEST(p_capacity, 1)::double precision / GREATEST(p_window_seconds, 1);
	v_tokens  double precision;
	v_updated timestamptz;
BEGIN
	INSERT INTO ai_rate_limits (user_id, action, tokens, updated_at)
	VALUES (p_user_id, p_action, p_capacity, v_now)
	ON CONFLICT (user_id, action) DO NOTHING;

	SELECT l.tokens, l.updated_at INTO v_tokens, v_updated
	FROM ai_rate_limits l
	WHERE l.user_id = p_user_id AND l.action = p_action
	FOR UPDATE;

	v_tokens := LEAST(p_capacity, v_tokens + EXTRACT(EPOCH FROM (v_now - v_updated)) * v_rate);

	IF v_tokens >= 1 THEN
		v_tokens := v_tokens - 1;
		allowed := true;
	ELSE
		allowed := false;
	END IF;

	UPDATE ai_rate_limits l
	SET tokens = v_tokens, updated_at = v_now
	WHERE l.user_id = p_user_id AND l.action = p_action;

	remaining := FLOOR(v_tokens)::integer;
	IF v_tokens >= 1 THEN
		reset_at := v_now;
	ELSE
		reset_at := v_now + make_interval(secs => (1 - v_tokens) / v_rate);
	END IF;
	RETURN NEXT;
END;
$$`

// EnsureSchema installs the bucket table and the check function. Safe to
// run repeatedly.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	for _, stmt := range []string{createTableSQL, createFunctionSQL} {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("install rate limit schema: %w", err)
		}
	}
	return nil
}
