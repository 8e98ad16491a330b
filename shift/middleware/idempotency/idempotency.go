package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"
)

const (
	Header       = "X-Idempotency-Key"
	maxKeyLength = 255
)

// Middleware replays the first successful response for a repeated
// X-Idempotency-Key. Starting a shift or closing one twice must not open a
// second drawer or recount the first.
//
//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := requestKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	ctx := req.Context()
	rk := recordKey{Endpoint: req.Data().Path, Key: key}
	payloadHash := hashPayload(req.Data().Payload)

	existing, getErr := records.Get(ctx, rk)
	switch {
	case getErr == nil:
		return replay(req, next, rk, existing, payloadHash)
	case !errors.Is(getErr, cache.Miss):
		rlog.Error("idempotency lookup failed", "error", getErr, "key", key)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
	}

	if err := claim(ctx, rk, payloadHash); err != nil {
		return middleware.Response{Err: err}
	}

	resp := next(req)
	if resp.Err != nil {
		release(ctx, rk)
		return resp
	}
	complete(ctx, rk, payloadHash, resp)
	return resp
}

func requestKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(Header))
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: Header + " header is required"}
	}
	if len(key) > maxKeyLength {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: Header + " header is too long"}
	}
	return key, nil
}

func hashPayload(payload any) string {
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request payload", "error", err)
		return ""
	}
	return digest(body)
}

func digest(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func checkPayload(existing record, payloadHash string) *errs.Error {
	if payloadHash != "" && existing.PayloadHash != "" && payloadHash != existing.PayloadHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key reused with a different request body"}
	}
	return nil
}

func replay(req middleware.Request, next middleware.Next, rk recordKey, existing record, payloadHash string) middleware.Response {
	if err := checkPayload(existing, payloadHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch existing.Status {
	case statusInFlight:
		return inFlight(rk.Key)
	case statusDone:
		if resp, ok := decodeResponse(req, existing); ok {
			rlog.Info("replaying idempotent response", "key", rk.Key, "endpoint", rk.Endpoint)
			return resp
		}
		return next(req)
	default:
		rlog.Warn("unknown idempotency record status, handling as new request", "key", rk.Key, "status", existing.Status)
		return next(req)
	}
}

func inFlight(key string) middleware.Response {
	rlog.Info("request with same idempotency key in flight", "key", key)
	return middleware.Response{
		Err: &errs.Error{Code: errs.Aborted, Message: "a request with this idempotency key is already in progress"},
	}
}

func decodeResponse(req middleware.Request, existing record) (middleware.Response, bool) {
	if len(existing.Response) == 0 {
		return middleware.Response{}, false
	}
	api := req.Data().API
	if api == nil || api.ResponseType == nil {
		return middleware.Response{}, false
	}

	payload := reflect.New(api.ResponseType.Elem()).Interface()
	if err := json.Unmarshal(existing.Response, payload); err != nil {
		rlog.Error("failed to decode stored response", "error", err)
		return middleware.Response{}, false
	}
	return middleware.Response{Payload: payload}, true
}

func claim(ctx context.Context, rk recordKey, payloadHash string) *errs.Error {
	err := records.Set(ctx, rk, record{
		Status:      statusInFlight,
		PayloadHash: payloadHash,
		StartedAt:   time.Now(),
	})
	if err != nil {
		rlog.Error("failed to claim idempotency key", "error", err, "key", rk.Key)
		return &errs.Error{Code: errs.Internal, Message: "failed to claim idempotency key"}
	}
	return nil
}

// release forgets a failed attempt so the client can retry with the same key.
func release(ctx context.Context, rk recordKey) {
	if _, err := records.Delete(ctx, rk); err != nil {
		rlog.Error("failed to release idempotency key", "error", err, "key", rk.Key)
	}
}

func complete(ctx context.Context, rk recordKey, payloadHash string, resp middleware.Response) {
	done := record{
		Status:      statusDone,
		PayloadHash: payloadHash,
		CompletedAt: time.Now(),
	}
	if resp.Payload != nil {
		body, err := json.Marshal(resp.Payload)
		if err != nil {
			rlog.Error("failed to marshal response for replay", "error", err)
			return
		}
		done.Response = body
	}

	if err := records.Set(ctx, rk, done); err != nil {
		rlog.Error("failed to store idempotent response", "error", err, "key", rk.Key)
	}
}
