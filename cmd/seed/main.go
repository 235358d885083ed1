package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/config"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/repository"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/seed"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var weekStartStr string

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机用户, 2: 插入随机部门, 3: 为所有部门插入随机用人需求, 4: 为所有员工插入某一周的随机空闲时间, 5: 插入演示数据)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.StringVar(&weekStartStr, "week-start", "", "周起始日期 (YYYY-MM-DD，必须为周日)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的用户数量")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain, cfg.InitialAdmin.CompanyID, nil)
			if err != nil {
				slog.Error("无法生成随机用户", slog.String("error", err.Error()))
				continue
			}

			if err := repo.CreateUser(user); err != nil {
				slog.Error("无法插入用户", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("插入用户成功", slog.Int("count", n-cnt))
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的部门数量")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			dept := utils.GenerateRandomDepartment(cfg.InitialAdmin.CompanyID)
			if err := repo.CreateDepartment(dept); err != nil {
				slog.Error("无法插入部门", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("插入部门成功", slog.Int("count", n-cnt))
	case 3:
		depts, err := repo.GetAllDepartments()
		if err != nil {
			slog.Error("无法获取所有部门", slog.String("error", err.Error()))
			return
		}

		cnt := 0
		for _, dept := range depts {
			req, err := utils.GenerateRandomShiftRequirement(dept.CompanyID, dept.ID)
			if err != nil {
				slog.Error("无法生成用人需求", slog.String("error", err.Error()))
				continue
			}

			if err := repo.SaveShiftRequirement(req); err != nil {
				slog.Error("无法插入用人需求", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("插入用人需求成功", slog.Int("count", cnt))
	case 4:
		weekStart, err := domain.ParseDate(weekStartStr)
		if err != nil {
			slog.Error("请输入合法的周起始日期", slog.String("error", err.Error()))
			return
		}

		users, err := repo.GetAllUsers()
		if err != nil {
			slog.Error("无法获取所有员工", slog.String("error", err.Error()))
			return
		}

		cnt := 0
		for _, user := range users {
			week, err := utils.GenerateRandomWeeklyAvailability(user.ID, user.CompanyID, weekStart)
			if err != nil {
				slog.Error("无法生成空闲时间", slog.String("error", err.Error()))
				return
			}

			if err := repo.UpsertWeeklyAvailability(week); err != nil {
				slog.Error("无法插入空闲时间", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("插入空闲时间成功", slog.Int("count", cnt))
	case 5:
		seed.SeedDemoData(repo, cfg.InitialAdmin.CompanyID, cfg.Seed.User.Password, cfg.Email.UserDomain)
	default:
		slog.Error("指定的操作非法")
	}
}
