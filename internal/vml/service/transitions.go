package service

import "github.com/jimyag/vml/internal/vml/entity"

// validTransitions 生命周期状态机
// 外层键是当前状态，内层键是允许的动作，值是动作完成后的目标状态
// 没有出现的 (状态, 动作) 组合都是非法转换
// BUILD / REBOOT / RESIZE 是系统管理的中间状态，不接受任何动作
var validTransitions = map[entity.ServerStatus]map[string]entity.ServerStatus{
	entity.StatusActive: {
		entity.ActionStop:   entity.StatusShutoff,
		entity.ActionReboot: entity.StatusActive,
		entity.ActionResize: entity.StatusActive,
	},
	entity.StatusShutoff: {
		entity.ActionStart: entity.StatusActive,
	},
	entity.StatusVerifyResize: {
		entity.ActionConfirmResize: entity.StatusActive,
	},
}

// canTransition 判断当前状态下是否允许执行动作
func canTransition(status entity.ServerStatus, action string) bool {
	actions, ok := validTransitions[status]
	if !ok {
		return false
	}
	_, ok = actions[action]
	return ok
}
