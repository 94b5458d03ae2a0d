package config

const (
	delimiter = "."

	ConfigPrefix = "funtom"

	ConfigLogPrefix   = ConfigPrefix + delimiter + "log"
	ConfigLogLevel    = ConfigLogPrefix + delimiter + "level"
	ConfigLogEncoding = ConfigLogPrefix + delimiter + "encoding"

	ConfigMemoPrefix       = ConfigPrefix + delimiter + "memo"
	ConfigMemoMaxTableSize = ConfigMemoPrefix + delimiter + "max_table_size"

	ConfigRandomPrefix = ConfigPrefix + delimiter + "random"
	ConfigRandomSeed   = ConfigRandomPrefix + delimiter + "seed"
)
