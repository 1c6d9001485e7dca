package events

// EventType represents the type of game event
type EventType int

const (
	// EventNone is returned by enemy updates that produced nothing
	EventNone EventType = iota

	// EventEnemyArrived signals an enemy reached the plate and took food
	// Trigger: Enemy.Update on Approaching -> Carrying (once per enemy)
	// Consumer: Loop session handler | Payload: *EnemyPayload
	EventEnemyArrived

	// EventEnemyDefeated signals an enemy's key was completed
	// Trigger: Enemy.CheckInput returning Complete (once per enemy)
	// Consumer: Loop session handler, particle burst | Payload: *EnemyPayload
	EventEnemyDefeated

	// EventInputMiss signals a keystroke that matched nothing
	// Trigger: resolver scan failure or rejection by the locked enemy
	// Consumer: Loop session handler | Payload: *MissPayload
	EventInputMiss

	// EventStateChanged signals a session phase transition
	// Trigger: StartGame, ReturnToMenu, lives exhausted, stage cleared
	// Consumer: logging, host | Payload: *StateChangedPayload
	EventStateChanged
)

func init() {
	RegisterType("none", EventNone)
	RegisterType("enemy_arrived", EventEnemyArrived)
	RegisterType("enemy_defeated", EventEnemyDefeated)
	RegisterType("input_miss", EventInputMiss)
	RegisterType("state_changed", EventStateChanged)
}

// GameEvent is one tagged event with its payload
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   uint64
}
