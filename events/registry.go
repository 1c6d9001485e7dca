package events

var typeToName = make(map[EventType]string)

// RegisterType names an EventType for logs
func RegisterType(name string, et EventType) {
	typeToName[et] = name
}

func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "unknown"
}
