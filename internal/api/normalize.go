package api

import (
	"bytes"
	"encoding/json"

	"wholesale-admin/internal/domain"

	"go.uber.org/zap"
)

// The backend has gone through several envelope conventions; the
// normalizers below accept every shape observed in production and reduce
// them to one internal representation. A shape nothing recognizes
// degrades to an empty value with a logged warning instead of failing
// the caller.

// unwrapData strips a {"data": ...} envelope, returning the payload
// unchanged when no envelope is present.
func unwrapData(raw json.RawMessage) json.RawMessage {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		return env.Data
	}
	return raw
}

// normalizeProductList accepts {"products":[...]}, {"data":{"products":[...]}},
// {"data":[...]} and a bare array.
func normalizeProductList(raw json.RawMessage, logger *zap.Logger) []domain.Product {
	var wrapped struct {
		Products []domain.Product `json:"products"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Products != nil {
		return wrapped.Products
	}

	inner := unwrapData(raw)
	if err := json.Unmarshal(inner, &wrapped); err == nil && wrapped.Products != nil {
		return wrapped.Products
	}

	var list []domain.Product
	if err := json.Unmarshal(inner, &list); err == nil {
		return list
	}

	logger.Warn("Unexpected product list response shape",
		zap.ByteString("payload", truncate(raw, 256)),
	)
	return []domain.Product{}
}

// normalizeProduct accepts {"product":...}, {"data":{"product":...}} and a
// bare product object.
func normalizeProduct(raw json.RawMessage, logger *zap.Logger) (domain.Product, bool) {
	var wrapped struct {
		Product *domain.Product `json:"product"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Product != nil {
		return *wrapped.Product, true
	}

	inner := unwrapData(raw)
	if err := json.Unmarshal(inner, &wrapped); err == nil && wrapped.Product != nil {
		return *wrapped.Product, true
	}

	var product domain.Product
	if err := json.Unmarshal(inner, &product); err == nil && product.ID != "" {
		return product, true
	}

	logger.Warn("Unexpected product response shape",
		zap.ByteString("payload", truncate(raw, 256)),
	)
	return domain.Product{}, false
}

// normalizeCategoryList accepts a {"data":...} envelope or a bare array.
func normalizeCategoryList(raw json.RawMessage, logger *zap.Logger) []domain.Category {
	var list []domain.Category
	if err := json.Unmarshal(unwrapData(raw), &list); err == nil {
		return list
	}

	logger.Warn("Unexpected category list response shape",
		zap.ByteString("payload", truncate(raw, 256)),
	)
	return []domain.Category{}
}

func truncate(raw []byte, n int) []byte {
	if len(raw) <= n {
		return raw
	}
	return raw[:n]
}
