package gateway

import (
	"chat-room/domain"
	"strings"
)

// splitSystem joins the system segments into one instruction and keeps the conversation in order.
func splitSystem(segments []domain.Segment) (string, []domain.Segment) {
	var system []string
	var conversation []domain.Segment
	for _, s := range segments {
		if s.Role == domain.RoleSystem {
			if s.Content != "" {
				system = append(system, s.Content)
			}
			continue
		}
		conversation = append(conversation, s)
	}
	return strings.Join(system, "\n\n"), conversation
}
