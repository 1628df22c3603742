package models

import "time"

// CollectionBackup представляет зашифрованную копию коллекции на сервере.
// Сервер не знает содержимого: Data это шифротекст целой коллекции.
type CollectionBackup struct {
	UpdatedAt time.Time `json:"updated_at"`
	UserID    string    `json:"user_id"`
	Kind      Kind      `json:"kind"`
	Data      []byte    `json:"data"`
	Revision  int64     `json:"revision"` // Revision монотонный счетчик перезаписей
}
