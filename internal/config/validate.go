package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be > 0 (got %v)", c.LLM.Timeout)
	}

	if c.Gallery.DefaultListLimit <= 0 {
		return fmt.Errorf("gallery.default_list_limit must be > 0 (got %d)", c.Gallery.DefaultListLimit)
	}
	if c.Gallery.MaxListLimit < c.Gallery.DefaultListLimit {
		return fmt.Errorf("gallery.max_list_limit (%d) must be >= gallery.default_list_limit (%d)",
			c.Gallery.MaxListLimit, c.Gallery.DefaultListLimit)
	}

	return nil
}
