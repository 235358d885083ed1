package utils

import (
	"fmt"
	"math/rand"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/roster"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "勇", "霞", "飞", "玲",
	"超", "华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌",
	"庆", "建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var roles = []domain.Role{
	domain.RoleEmployee,
	domain.RoleManager,
	domain.RoleHRAdmin,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

func GenerateUsernameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	username := ""

	for _, pinyin := range pinyinArray {
		length := rand.Intn(len(pinyin)) + 1
		username += pinyin[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string, companyID string, departmentID *int64) (*domain.User, error) {
	fullName := GenerateRandomChineseName()
	username := GenerateUsernameFromChineseName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
		CompanyID:    companyID,
		DepartmentID: departmentID,
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

func GenerateRandomDepartment(companyID string) *domain.Department {
	return &domain.Department{
		CompanyID:   companyID,
		Name:        "部门" + GenerateRandomID(3, 3),
		Description: "部门描述" + GenerateRandomID(20, 10),
	}
}

// randomDaySlots 把一天按随机份数切开，使得各段天然不重叠
func randomDaySlots(day domain.DayOfWeek) []domain.TimeSlot {
	slotsNum := rand.Intn(3) + 1
	hourPerSlot := 24 / slotsNum

	slots := make([]domain.TimeSlot, slotsNum)
	for i := range slots {
		startHour := i * hourPerSlot
		endHour := startHour + rand.Intn(hourPerSlot-1) + 1

		shiftType := domain.ShiftTypeDay
		if startHour >= 18 || startHour < 6 {
			shiftType = domain.ShiftTypeNight
		}

		slots[i] = domain.TimeSlot{
			StartDay:   day,
			StartTime:  fmt.Sprintf("%02d:00", startHour),
			EndDay:     day,
			EndTime:    fmt.Sprintf("%02d:00", endHour),
			ShiftType:  shiftType,
			Preference: int32(rand.Intn(11)),
		}
	}

	return slots
}

// GenerateRandomWeeklyAvailability 为某个员工生成一周随机的空闲时间，
// 所有时段都通过核心校验逐个加入，保证结果可以直接提交
func GenerateRandomWeeklyAvailability(employeeID int64, companyID string, weekStart domain.Date) (*domain.WeeklyAvailability, error) {
	week, err := roster.NewWeeklyAvailability(employeeID, companyID, weekStart)
	if err != nil {
		return nil, err
	}

	for _, day := range domain.AllDays() {
		switch rand.Intn(4) {
		case 0:
			// 这一天没空
		case 1:
			// 整天有空
			week.Days[day] = domain.DaySchedule{Available: true, Slots: []domain.TimeSlot{}}
		default:
			for _, slot := range randomDaySlots(day) {
				if err := roster.AddSlot(week, day, slot); err != nil {
					return nil, err
				}
			}
		}
	}

	return week, nil
}

// GenerateRandomShiftRequirement 为某个部门生成一周随机的用人需求
func GenerateRandomShiftRequirement(companyID string, departmentID int64) (*domain.ShiftRequirement, error) {
	req := roster.NewShiftRequirement(companyID, departmentID)

	for _, day := range domain.AllDays() {
		for _, slot := range randomDaySlots(day) {
			if rand.Intn(2) == 0 {
				continue
			}

			rs := domain.RequirementSlot{
				StartDay:     slot.StartDay,
				StartTime:    slot.StartTime,
				EndDay:       slot.EndDay,
				EndTime:      slot.EndTime,
				ShiftType:    slot.ShiftType,
				MinEmployees: int32(rand.Intn(5) + 1),
			}
			if err := roster.AddRequirementSlot(req, day, rs); err != nil {
				return nil, err
			}
		}
	}

	return req, nil
}
