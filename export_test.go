package studydoc

// RankChunks exposes rankChunks for tie-break tests.
var RankChunks = rankChunks
