package msg

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

var messages map[string]string

// init loads messages from YAML
func init() {
	var value, ok = os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		value = "configs/messages.yml"
	}
	if _, err := os.Stat(value); err != nil {
		log.Printf("Messages file '%s' not found, skipping load.", value)
		return
	}
	Init(value)
}

// Init loads the message catalog from the given file. It uses a dedicated
// viper instance so the catalog never shadows the application properties.
func Init(filepath string) {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}

	messages = make(map[string]string)
	parseMessageMap("", v.AllSettings(), messages)
}

// parseMessageMap reads recursively the yml catalog
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns the message for key with {n} placeholders replaced by
// the corresponding argument.
func GetMessage(key string, args ...interface{}) string {
	message, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		message = strings.ReplaceAll(message, placeholder, fmt.Sprintf("%v", arg))
	}

	return message
}
