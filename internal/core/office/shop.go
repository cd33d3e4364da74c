package office

import (
	"time"

	"officesim/internal/core/model"
)

// ShopAction is a paid action with its own cooldown.
type ShopAction uint8

const (
	ShopBoost ShopAction = iota
	ShopHire

	shopActionCount
)

func (action ShopAction) String() string {
	switch action {
	case ShopBoost:
		return "boost"
	case ShopHire:
		return "hire"
	default:
		return "unknown"
	}
}

// SpendAndApply pays cost and applies effect, or does nothing when the
// office cannot afford it.
func (office *Office) SpendAndApply(cost float64, effect model.Effect) bool {
	if cost < 0 || office.money < cost {
		return false
	}
	office.money -= cost
	office.ApplyEffect(effect)
	return true
}

// Buy performs a shop action if its cooldown has run out and the office
// can pay for it.
func (office *Office) Buy(action ShopAction) bool {
	if office.state != GameRunning || action >= shopActionCount {
		return false
	}
	if office.cooldowns[action] > 0 {
		return false
	}
	config := office.shopConfig(action)
	if config.Effect.Employees > office.pool.AvailableCount() {
		return false
	}
	if !office.SpendAndApply(config.Cost, config.Effect) {
		return false
	}
	office.cooldowns[action] = config.Cooldown
	return true
}

// Boost buys the energy boost for every living employee.
func (office *Office) Boost() bool {
	return office.Buy(ShopBoost)
}

// Hire buys a new employee.
func (office *Office) Hire() bool {
	return office.Buy(ShopHire)
}

// Cooldown returns the time left before action can be bought again.
func (office *Office) Cooldown(action ShopAction) time.Duration {
	if action >= shopActionCount {
		return 0
	}
	return office.cooldowns[action]
}

func (office *Office) shopConfig(action ShopAction) model.ShopActionConfig {
	if action == ShopHire {
		return office.config.Economy.Hire
	}
	return office.config.Economy.Boost
}

func (office *Office) advanceCooldowns() {
	for i := range office.cooldowns {
		office.cooldowns[i] -= office.config.TickInterval
		if office.cooldowns[i] < 0 {
			office.cooldowns[i] = 0
		}
	}
}
