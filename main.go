package main

import (
	"flag"
	"log/slog"

	"github.com/nepemufsc/nepemcert-api/api"
	"github.com/nepemufsc/nepemcert-api/api/model/parameterModel"
	"github.com/nepemufsc/nepemcert-api/common/config"
	"github.com/nepemufsc/nepemcert-api/common/gorm"
	"github.com/nepemufsc/nepemcert-api/common/mongo"
	"github.com/nepemufsc/nepemcert-api/common/util"
)

func main() {
	isPushDB := flag.Bool("PushDB", false, "Run database migration")
	isPullDB := flag.Bool("PullDB", false, "Run database pulling")
	isRunAfter := flag.Bool("Run", false, "Run after db process")
	flag.Parse()
	config.LoadConfig()
	if *isPushDB || *isPullDB {
		if *isPullDB {
			gorm.Pull_db()
		}
		if *isPushDB {
			gorm.Push_db()
		}
		if !*isRunAfter {
			return
		}
	}

	gorm.InitGorm()
	mongo.InitMongo()

	if err := util.InitMinIO(); err != nil {
		slog.Error("Failed to initialize MinIO", "error", err)
	}

	util.InitDialer()

	if err := parameterModel.Seed(); err != nil {
		slog.Error("Failed to seed parameter document", "error", err)
	}

	util.StartArchiveCleanupJob()

	api.InitFiber()
}
