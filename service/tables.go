package service

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

var tableIds int64 = 0
var tables = hashmap.New()

func CreateTable(options TableOptions) *Table {
	table := NewTable(atomic.AddInt64(&tableIds, 1), options)
	tables.Set(table.ID, table)
	log.Infof("table %d created\n", table.ID)
	return table
}

func GetTable(tableId int64) *Table {
	if v, ok := tables.Get(tableId); ok {
		return v.(*Table)
	}
	return nil
}

func GetTables() []*Table {
	list := make([]*Table, 0)
	tables.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Table))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func DeleteTable(tableId int64) {
	table := GetTable(tableId)
	if table == nil {
		return
	}
	table.Close()
	tables.Del(tableId)
	log.Infof("table %d removed\n", tableId)
}

// Sweep removes closed tables and tables left without a session for longer than maxIdle.
func Sweep(maxIdle time.Duration) int {
	removed := 0
	for _, table := range GetTables() {
		if table.Abandoned(maxIdle) {
			DeleteTable(table.ID)
			removed++
		}
	}
	return removed
}

func StartSweeper(interval, maxIdle time.Duration) {
	async.Async(func() {
		for {
			time.Sleep(interval)
			if removed := Sweep(maxIdle); removed > 0 {
				log.Infof("sweeper removed %d idle table(s)\n", removed)
			}
		}
	})
}
