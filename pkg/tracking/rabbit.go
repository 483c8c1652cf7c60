package tracking

import (
	"log"
	"net/http"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/messaging"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/types"
)

const trackingTopic = messaging.Topic("tracking")

type RabbitTracking struct {
	country    string
	connection *amqp.Connection
}

func NewRabbitTracking(url, country string) (*RabbitTracking, error) {
	ret := RabbitTracking{
		country: country,
	}
	if err := ret.connect(url); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (t *RabbitTracking) connect(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	t.connection = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return messaging.DefineTopic(ch, "global", trackingTopic)
}

func (t *RabbitTracking) Close() error {
	return t.connection.Close()
}

func (t *RabbitTracking) send(data any) error {
	return messaging.Send(t.connection, "global", trackingTopic, data)
}

type BaseEvent struct {
	SessionId string `json:"session_id"`
	Country   string `json:"country,omitempty"`
	Event     uint16 `json:"event"`
}

type SessionEvent struct {
	*BaseEvent
	UserAgent string `json:"user_agent,omitempty"`
	Ip        string `json:"ip,omitempty"`
	Language  string `json:"language,omitempty"`
}

func (t *RabbitTracking) TrackSession(sessionId string, r *http.Request) {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}
	err := t.send(SessionEvent{
		BaseEvent: &BaseEvent{Event: 0, SessionId: sessionId, Country: t.country},
		Language:  r.Header.Get("Accept-Language"),
		UserAgent: r.UserAgent(),
		Ip:        ip,
	})
	if err != nil {
		log.Println("Error sending session event: ", err)
	}
}

type SearchEvent struct {
	*BaseEvent
	Criteria        types.Criteria `json:"criteria"`
	NumberOfResults int            `json:"noi"`
	Referer         string         `json:"referer"`
}

func (t *RabbitTracking) TrackSearch(sessionId string, criteria types.Criteria, results int, r *http.Request) {
	err := t.send(&SearchEvent{
		BaseEvent:       &BaseEvent{Event: 1, SessionId: sessionId, Country: t.country},
		Criteria:        criteria,
		NumberOfResults: results,
		Referer:         r.Header.Get("Referer"),
	})
	if err != nil {
		log.Println("Error sending search event: ", err)
	}
}

type SelectEvent struct {
	*BaseEvent
	ListingId     string `json:"listing_id"`
	Selected      bool   `json:"selected"`
	SelectionSize int    `json:"selection_size"`
}

func (t *RabbitTracking) TrackSelect(sessionId string, listingId string, selected bool, selectionSize int) {
	err := t.send(&SelectEvent{
		BaseEvent:     &BaseEvent{Event: 2, SessionId: sessionId, Country: t.country},
		ListingId:     listingId,
		Selected:      selected,
		SelectionSize: selectionSize,
	})
	if err != nil {
		log.Println("Error sending select event: ", err)
	}
}

type CompareEvent struct {
	*BaseEvent
	ListingIds []string `json:"listing_ids"`
}

func (t *RabbitTracking) TrackCompare(sessionId string, listingIds []string) {
	err := t.send(&CompareEvent{
		BaseEvent:  &BaseEvent{Event: 3, SessionId: sessionId, Country: t.country},
		ListingIds: listingIds,
	})
	if err != nil {
		log.Println("Error sending compare event: ", err)
	}
}
