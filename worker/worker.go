package worker

import (
	"sync/atomic"

	"github.com/robfig/cron/v3"
)

// IJob job的接口
type IJob interface {
	Start() error
	Run()
	Stop() error
}

type OnWork func() error

type BaseJob struct {
	Cron    *cron.Cron
	OnWork  OnWork
	running int32
}

func (job *BaseJob) Start() error {
	job.Cron.Start()
	return nil
}

func (job *BaseJob) Stop() error {
	<-job.Cron.Stop().Done()
	return nil
}

// Run runs OnWork once, skipped while a previous run is still in progress
func (job *BaseJob) Run() {
	if !atomic.CompareAndSwapInt32(&job.running, 0, 1) {
		return
	}
	defer atomic.StoreInt32(&job.running, 0)

	_ = job.OnWork()
}

// IsRunning reports whether OnWork is in progress
func (job *BaseJob) IsRunning() bool {
	return atomic.LoadInt32(&job.running) == 1
}
