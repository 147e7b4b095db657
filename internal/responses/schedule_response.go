package responses

type ProcessResponse struct {
	ProcessId      int     `json:"process_id"`
	Name           string  `json:"name"`
	ArrivalTime    int64   `json:"arrival_time"`
	BurstTime      int64   `json:"burst_time"`
	CompletionTime int64   `json:"completion_time"`
	TurnAroundTime int64   `json:"turn_around_time"`
	WaitingTime    int64   `json:"waiting_time"`
	ResponseTime   *int64  `json:"response_time,omitempty"`
	Utilization    float64 `json:"utilization"`
}

type SegmentResponse struct {
	Start     int64  `json:"start"`
	End       int64  `json:"end"`
	ProcessId int    `json:"process_id"`
	Name      string `json:"name"`
}

type TimelineResponse struct {
	Segments []SegmentResponse `json:"segments"`
	EndTime  int64             `json:"end_time"`
}

type ScheduleResponse struct {
	Policy                string            `json:"policy"`
	Title                 string            `json:"title"`
	Preemptive            bool              `json:"preemptive"`
	TotalTime             int64             `json:"total_time"`
	IdleTime              int64             `json:"idle_time"`
	ContextSwitches       int               `json:"context_switches"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   *float64          `json:"average_response_time,omitempty"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Timeline              TimelineResponse  `json:"timeline"`
}

type CompareResponse struct {
	Results []ScheduleResponse `json:"results"`
}
