package component

// Health — компонент здоровья
type Health struct {
	Value float64
	Max   float64
}

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	Damage          float64 // Урон одного снаряда
	FireRate        float64 // Скорострельность (выстрелов в секунду)
	FireCooldown    float64 // Оставшееся время до следующего выстрела
	Range           float64 // Радиус действия в пикселях
	ProjectileSpeed float64 // Скорость снаряда, пикселей в секунду
	Homing          bool    // Снаряд доводится на цель каждый кадр
}
