package app

// MinPlayersToStartGame is the minimum number of occupied seats required to
// start a game. Centralized so tests and local runs adjust one place.
const MinPlayersToStartGame = 2
