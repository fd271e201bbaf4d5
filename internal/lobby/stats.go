package lobby

type Stats struct {
	Connections int `json:"connections"`
	Queued      int `json:"queued"`
	Games       int `json:"games"`
	Pending     int `json:"pending_messages"`
	Dropped     int `json:"dropped_messages"`
}

func (that *Lobby) stats() Stats {
	stats := Stats{
		Connections: len(that.connections),
		Queued:      that.queue.Len(),
		Games:       len(that.games),
		Dropped:     that.dropped,
	}

	for _, conn := range that.connections {
		stats.Pending += conn.mailbox.Len()
	}

	return stats
}
