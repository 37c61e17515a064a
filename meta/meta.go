// meta/meta.go
package meta

// DEFAULT_DEPTH defines the search depth of the machine player.
const DEFAULT_DEPTH = 3

// DEFAULT_MOVE_LIMIT defines the number of moves per side that results in a draw.
const DEFAULT_MOVE_LIMIT = 60

// MAX_TURNS caps the engine loop independently of the board's move limit.
const MAX_TURNS = 300

// NUM_GAMES defines the number of games per experiment match up.
const NUM_GAMES = 10
