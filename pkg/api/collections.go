package api

import "time"

// PutCollectionRequest заменяет резервную копию коллекции целиком
type PutCollectionRequest struct {
	// Data - коллекция, зашифрованная ключом пользователя (Base64)
	Data string `json:"data" validate:"required,base64"`
	// BaseRevision - последняя ревизия сервера, известная клиенту
	BaseRevision int64 `json:"base_revision" validate:"gte=0"`
}

// PutCollectionResponse - результат записи
type PutCollectionResponse struct {
	Revision int64 `json:"revision"`
	// Overwrote - между BaseRevision и этой записью коллекцию менял другой клиент
	Overwrote bool `json:"overwrote"`
}

// CollectionResponse - резервная копия коллекции
type CollectionResponse struct {
	UpdatedAt time.Time `json:"updated_at"`
	Kind      string    `json:"kind"`
	Data      string    `json:"data"`
	Revision  int64     `json:"revision"`
}
