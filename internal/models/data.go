package models

import "fmt"

// Kind определяет тип коллекции, с которой работает операция.
type Kind string

const (
	KindOutfits Kind = "outfits" // KindOutfits реестр образов
	KindVision  Kind = "vision"  // KindVision элементы vision board
	KindEvents  Kind = "events"  // KindEvents события календаря
)

// Kinds возвращает все типы коллекций в фиксированном порядке.
func Kinds() []Kind {
	return []Kind{KindOutfits, KindVision, KindEvents}
}

// ParseKind разбирает строковое имя коллекции.
// Принимает также единственное число ("outfit", "event").
func ParseKind(s string) (Kind, error) {
	switch s {
	case "outfits", "outfit":
		return KindOutfits, nil
	case "vision", "vision-board", "visions":
		return KindVision, nil
	case "events", "event":
		return KindEvents, nil
	default:
		return "", fmt.Errorf("unknown collection kind: %q (use outfits, vision or events)", s)
	}
}

// StorageKey возвращает ключ, под которым коллекция лежит в хранилище.
func (k Kind) StorageKey() string {
	return "lumina_" + string(k)
}

// OutfitCategory категория образа.
type OutfitCategory string

const (
	OutfitCasual OutfitCategory = "casual"
	OutfitFormal OutfitCategory = "formal"
	OutfitWork   OutfitCategory = "work"
	OutfitSport  OutfitCategory = "sport"
)

// OutfitCategories перечисляет допустимые категории образов.
func OutfitCategories() []OutfitCategory {
	return []OutfitCategory{OutfitCasual, OutfitFormal, OutfitWork, OutfitSport}
}

// EventType тип события календаря.
type EventType string

const (
	EventAppointment EventType = "appointment"
	EventSocial      EventType = "social"
	EventDeadline    EventType = "deadline"
	EventSelfCare    EventType = "self-care"
)

// EventTypes перечисляет допустимые типы событий.
func EventTypes() []EventType {
	return []EventType{EventAppointment, EventSocial, EventDeadline, EventSelfCare}
}

// DateLayout формат даты события (точность до дня).
const DateLayout = "2006-01-02"

// Outfit представляет образ в реестре.
type Outfit struct {
	ID        string         `json:"id" validate:"required,utf8"`                                 // ID уникальный идентификатор
	Name      string         `json:"name" validate:"required,utf8"`                               // Name отображаемое имя
	Category  OutfitCategory `json:"category" validate:"required,oneof=casual formal work sport"` // Category категория образа
	Image     string         `json:"image" validate:"required,utf8,url|datauri"`                  // Image ссылка на изображение
	DateAdded string         `json:"dateAdded" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// VisionItem представляет сгенерированное изображение на vision board.
type VisionItem struct {
	ID       string `json:"id" validate:"required,utf8"`
	ImageURL string `json:"imageUrl" validate:"required,utf8,url|datauri"` // ImageURL URL или data: URI
	Prompt   string `json:"prompt" validate:"utf8"`                        // Prompt исходный текстовый запрос
	Category string `json:"category" validate:"utf8"`                      // Category свободная метка
}

// Event представляет событие календаря.
type Event struct {
	ID    string    `json:"id" validate:"required,utf8"`
	Title string    `json:"title" validate:"required,utf8"`
	Date  string    `json:"date" validate:"required,datetime=2006-01-02"`
	Type  EventType `json:"type" validate:"required,oneof=appointment social deadline self-care"`
}

// Entity ограничивает типы, которые могут храниться в коллекциях.
type Entity interface {
	Outfit | VisionItem | Event

	// Kind возвращает тип коллекции, к которой относится сущность
	Kind() Kind
	// Key возвращает идентификатор сущности
	Key() string
}

func (Outfit) Kind() Kind     { return KindOutfits }
func (VisionItem) Kind() Kind { return KindVision }
func (Event) Kind() Kind      { return KindEvents }

func (o Outfit) Key() string     { return o.ID }
func (v VisionItem) Key() string { return v.ID }
func (e Event) Key() string      { return e.ID }
