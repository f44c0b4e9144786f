package config

type (
	DriverConfig struct {
		PostgresDB PostgresDB
		Minio      Minio
		Logger     Logger
	}
	PostgresDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DBName   string
		SSLMode  string
	}
	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		UseSSL     bool
		BucketName string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App App
		JWT JWT
	}
	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
	}
	JWT struct {
		Secret string
	}
)
