package internal

import (
	"github.com/ramya-constructions/estate-backend/internal/handler"
	"github.com/ramya-constructions/estate-backend/pkg/logutils"
)

// registerManagers instantiates every manager contributed via
// handler.Registers.
func registerManagers(conf *handler.RegisterConfig) []handler.Manager {
	var managers []handler.Manager
	for _, register := range handler.Registers {
		manager := register(conf)
		managers = append(managers, manager)
		logutils.Log.Infof("Registered manager: %s", manager.GetName())
	}
	return managers
}
