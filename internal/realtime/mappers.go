package realtime

import (
	"encoding/json"
	"fmt"

	"github.com/pchukwuemeka424/famGuard-sub003/internal/models"
)

// CheckInMapper преобразует события таблицы чек-инов.
// Эскалация: экстренный или пропущенный чек-ин.
type CheckInMapper struct{}

func (CheckInMapper) Table() string {
	return "check_ins"
}

func (CheckInMapper) Map(ev ChangeEvent) (any, *Escalation, error) {
	var c models.CheckIn
	if err := json.Unmarshal(ev.Payload, &c); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal check-in payload: %w", err)
	}

	switch c.Status {
	case models.CheckInStatusEmergency:
		return c, &Escalation{
			Key:     "emergency:" + c.ID,
			Title:   "Emergency check-in",
			Body:    fmt.Sprintf("A trusted contact reported an emergency: %s", c.Message),
			Refresh: true,
		}, nil
	case models.CheckInStatusMissed:
		return c, &Escalation{
			Key:     "missed:" + c.ID,
			Title:   "Missed check-in",
			Body:    "A trusted contact missed a scheduled check-in.",
			Refresh: true,
		}, nil
	}
	return c, nil, nil
}

// AdvisoryMapper преобразует события таблицы предупреждений о маршрутах.
// Эскалация: оценка риска пересекает порог вверх.
type AdvisoryMapper struct {
	RiskThreshold float64
}

func (AdvisoryMapper) Table() string {
	return "travel_advisories"
}

func (m AdvisoryMapper) Map(ev ChangeEvent) (any, *Escalation, error) {
	var a models.TravelAdvisory
	if err := json.Unmarshal(ev.Payload, &a); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal travel advisory payload: %w", err)
	}

	if a.RiskScore >= m.RiskThreshold {
		return a, &Escalation{
			Key:     "high-risk:" + a.ID,
			Title:   "High-risk travel advisory",
			Body:    fmt.Sprintf("Travel advisory for %s crossed the risk threshold.", a.Region),
			Refresh: true,
		}, nil
	}
	return a, nil, nil
}
