package lobby

type eventKind int

const (
	eventConnect eventKind = iota
	eventReceive
	eventWritable
	eventClose
	eventStats
)

func (that eventKind) String() string {
	switch that {
	case eventConnect:
		return "connect"
	case eventReceive:
		return "receive"
	case eventWritable:
		return "writable"
	case eventClose:
		return "close"
	case eventStats:
		return "stats"
	default:
		return "unknown"
	}
}

type writeResult struct {
	data []byte
	err  error
}

type event struct {
	kind   eventKind
	connID string
	peer   Peer
	data   []byte

	writeReply chan<- writeResult
	statsReply chan<- Stats
}

func (that *Lobby) dispatch(ev event) {
	switch ev.kind {
	case eventConnect:
		that.onConnect(ev.connID, ev.peer)
	case eventReceive:
		that.onMessage(ev.connID, ev.data)
	case eventClose:
		that.onDisconnect(ev.connID)
	case eventWritable:
		data, err := that.onWritable(ev.connID)
		ev.writeReply <- writeResult{data: data, err: err}
	case eventStats:
		ev.statsReply <- that.stats()
	default:
		that.logger.Error("unknown lobby event", "kind", ev.kind)
	}
}
