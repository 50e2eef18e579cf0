package get_schedule_config

// ScheduleConfigResponse правила рабочего дня для фронтенда
type ScheduleConfigResponse struct {
	Timezone          string `json:"timezone"`
	Open              string `json:"open"`
	LastStart         string `json:"lastStart"`
	MinEnd            string `json:"minEnd"`
	Close             string `json:"close"`
	EndGraceMinutes   int    `json:"endGraceMinutes"`
	PastBufferMinutes int    `json:"pastBufferMinutes"`
}
