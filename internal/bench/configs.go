package bench

// benchmarksConfig holds all parameters for each benchmark.
type benchmarksConfig struct {
	benchmarkInsertConfig
	benchmarkPreparedConfig
	benchmarkQueryConfig
}

type benchmarkInsertConfig struct {
	insertXUsers int
}

type benchmarkPreparedConfig struct {
	preparedXUsers int
}

type benchmarkQueryConfig struct {
	queryXUsers      int
	queryUsersYTimes int
}

func getConfig() benchmarksConfig {
	return benchmarksConfig{
		benchmarkInsertConfig: benchmarkInsertConfig{
			insertXUsers: 5_000,
		},

		benchmarkPreparedConfig: benchmarkPreparedConfig{
			preparedXUsers: 50_000,
		},

		benchmarkQueryConfig: benchmarkQueryConfig{
			queryXUsers:      1_000,
			queryUsersYTimes: 200,
		},
	}
}
