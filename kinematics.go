package daa

import "math"

// Gravity is standard gravitational acceleration (m/s^2), used to relate
// bank angle to turn radius.
const Gravity = 9.80665

// TurnRadius returns the radius of a level turn at ground speed gs (m/s)
// flown at bank angle bank (radians). Fails with NumericOutOfRange when
// bank is at or beyond pi/2: the result is clamped to 0 and the error is
// reported rather than panicking.
func TurnRadius(gs, bank float64) (float64, error) {
	if math.Abs(bank) >= math.Pi/2 {
		return 0, NumericOutOfRange
	}
	return (gs * gs) / (Gravity * math.Tan(math.Abs(bank))), nil
}

// TurnRadiusByRate returns the turn radius for ground speed gs and a
// signed turn rate omega (rad/s, positive = right turn).
func TurnRadiusByRate(gs, omega float64) float64 {
	if almostEquals(omega, 0) {
		return math.Inf(1)
	}
	return math.Abs(gs / omega)
}

// SpeedOfTurn returns the ground speed consistent with radius R flown at
// bank angle bank.
func SpeedOfTurn(radius, bank float64) float64 {
	return math.Sqrt(radius * Gravity * math.Tan(math.Abs(bank)))
}

// TurnRate returns the signed turn rate (rad/s) for ground speed gs and
// bank angle bank; sign follows the sign of bank.
func TurnRate(gs, bank float64) float64 {
	if almostEquals(gs, 0) {
		return 0
	}
	return Gravity * math.Tan(bank) / gs
}

// BankAngleRadius returns the bank angle needed to fly radius R at ground
// speed gs.
func BankAngleRadius(gs, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return math.Atan((gs * gs) / (Gravity * radius))
}

// BankAngleGoal returns the signed bank angle needed to achieve turn rate
// omega (rad/s) at ground speed gs.
func BankAngleGoal(gs, omega float64) float64 {
	return math.Atan(omega * gs / Gravity)
}

// TurnRateGoal returns the signed turn rate that carries track from
// `trk` to `goalTrk`, choosing the direction of minimal sweep unless
// right is explicitly forced.
func TurnRateGoal(trk, goalTrk, maxRate float64, right bool, forceDir bool) float64 {
	turnRight := right
	if !forceDir {
		turnRight = clockwise(trk, goalTrk)
	}
	if turnRight {
		return math.Abs(maxRate)
	}
	return -math.Abs(maxRate)
}

// center returns the center of the turn circle an aircraft at position so,
// flying at velocity vo, would follow at turn rate omega.
func center(so Vect3, vo Velocity, omega float64) Vect3 {
	if almostEquals(omega, 0) {
		return InvalidV3
	}
	radius := vo.Gs() / omega
	perp := vo.Vect2().Hat().PerpR().Scal(radius)
	return Vect3{so.X + perp.X, so.Y + perp.Y, so.Z}
}

// TurnOmega returns the position and velocity after flying time t at
// turn rate omega starting from (so, vo), avoiding repeated trig calls by
// advancing track with mkAddTrk.
func TurnOmega(so Vect3, vo Velocity, t, omega float64) (Vect3, Velocity) {
	if almostEquals(omega, 0) {
		return so.Linear(vo, t), vo
	}
	cen := center(so, vo, omega)
	theta := omega * t
	np := rotateAbout(so, cen, theta)
	nv := vo.MkAddTrk(theta)
	return np.MkZ(so.Z + vo.Vs()*t), nv
}

// rotateAbout rotates p about c by theta, positive = clockwise (compass
// convention, matching a positive turn rate).
func rotateAbout(p, c Vect3, theta float64) Vect3 {
	d := p.Vect2().Sub(c.Vect2())
	s, cc := math.Sincos(theta)
	rx := d.X*cc + d.Y*s
	ry := -d.X*s + d.Y*cc
	return Vect3{c.X + rx, c.Y + ry, p.Z}
}

// Turn returns the position and velocity after flying time t along a turn
// of the given signed radius (positive = right turn), at constant ground
// speed.
func Turn(so Vect3, vo Velocity, t, radius float64, turnRight bool) (Vect3, Velocity) {
	if math.IsInf(radius, 0) || almostEquals(radius, 0) {
		return so.Linear(vo, t), vo
	}
	omega := vo.Gs() / radius
	if !turnRight {
		omega = -omega
	}
	return TurnOmega(so, vo, t, omega)
}

// TurnByDist2D returns the point reached by following the turn circle
// defined by center `center` and initial radial direction from `so`,
// sweeping signed angle theta (positive = clockwise), together with the
// resulting track. When chordal is true the straight-line chord distance
// is used for distance accounting instead of the arc length (matching the
// reference engine's two supported conventions).
func TurnByDist2D(so, centerPt Vect3, dir float64, radius, theta float64, chordal bool) (Vect3, float64, float64) {
	np := rotateAbout(so, centerPt, theta)
	dist := radius * math.Abs(theta)
	if chordal {
		dist = np.DistanceH(so)
	}
	trk := math.Atan2(np.X-centerPt.X, np.Y-centerPt.Y) + math.Copysign(math.Pi/2, theta)
	return np, modulo(trk, 2*math.Pi), dist
}

// TurnUntil returns the state after turning from (so, vo) to reach track
// goalTrk at the given turn rate magnitude, choosing direction by minimal
// sweep unless forced.
func TurnUntil(so Vect3, vo Velocity, goalTrk, maxOmega float64, right, forceDir bool) (Vect3, Velocity, float64) {
	omega := TurnRateGoal(vo.Trk(), goalTrk, maxOmega, right, forceDir)
	t := turnDelta(vo.Trk(), goalTrk, omega > 0) / math.Abs(omega)
	np, nv := TurnOmega(so, vo, t, omega)
	return np, nv, t
}

// GsAccelUntil returns the state after accelerating ground speed from
// vo's current value to goalGs at the given (unsigned) acceleration
// magnitude, holding track and vertical speed constant.
func GsAccelUntil(so Vect3, vo Velocity, goalGs, accel float64) (Vect3, Velocity, float64) {
	if accel < 0 {
		accel = -accel
	}
	delta := goalGs - vo.Gs()
	t := 0.0
	if !almostEquals(accel, 0) {
		t = math.Abs(delta) / accel
	}
	a := accel
	if delta < 0 {
		a = -accel
	}
	dist := vo.Gs()*t + 0.5*a*t*t
	np := so.LinearByDist2D(vo.Trk(), dist).MkZ(so.Z + vo.Vs()*t)
	nv := vo.MkGs(goalGs)
	return np, nv, t
}

// GsAccelToDist returns the time needed to cover horizontal distance d
// starting at ground speed gs0 under constant acceleration accel (signed).
func GsAccelToDist(gs0, accel, d float64) float64 {
	if almostEquals(accel, 0) {
		if almostEquals(gs0, 0) {
			return math.NaN()
		}
		return d / gs0
	}
	return root(0.5*accel, gs0, -d, 1)
}

// VsAccelUntil returns the state after accelerating vertical speed from
// vo's current value to goalVs at the given (unsigned) acceleration
// magnitude.
func VsAccelUntil(so Vect3, vo Velocity, goalVs, accel float64) (Vect3, Velocity, float64) {
	if accel < 0 {
		accel = -accel
	}
	delta := goalVs - vo.Vs()
	t := 0.0
	if !almostEquals(accel, 0) {
		t = math.Abs(delta) / accel
	}
	a := accel
	if delta < 0 {
		a = -accel
	}
	dz := vo.Vs()*t + 0.5*a*t*t
	np := so.LinearByDist2D(vo.Trk(), vo.Gs()*t).MkZ(so.Z + dz)
	nv := vo.MkVs(goalVs)
	return np, nv, t
}

// levelOutTimes describes the three phases of an accelerate/cruise/
// decelerate vertical-speed maneuver, mirroring Kinematics::
// vsLevelOutTimesBase in the reference engine: accelerate from vs0 to a
// cruise vertical speed, hold, then decelerate to a stop, arriving at
// targetAlt with zero vertical speed.
type levelOutTimes struct {
	T1, T2, T3 float64 // phase end times, measured from maneuver start
	A1, A2     float64 // signed accelerations of phase 1 and phase 3
}

// v1 returns the vertical speed reached after accelerating from voz at
// rate a1 for duration t ("alpha", Kinematics.cpp).
func v1(voz, a1, t float64) float64 { return voz + a1*t }

// s1 returns the vertical distance covered accelerating from voz at rate
// a1 for duration t ("alpha", Kinematics.cpp).
func s1(voz, a1, t float64) float64 { return voz*t + 0.5*a1*t*t }

// t3Decel returns the time needed to decelerate from voz to a stop at
// rate a1 (Kinematics.cpp's free function T3).
func t3Decel(voz, a1 float64) float64 { return -voz / a1 }

// s3Decel returns the vertical distance covered decelerating from voz to
// a stop at rate a1 (Kinematics.cpp's free function S3).
func s3Decel(voz, a1 float64) float64 { return s1(voz, a1, t3Decel(voz, a1)) }

// vsLevelOutTimesBase computes level-out phase timing assuming the
// aircraft is already headed in the direction of targetAlt, following
// Kinematics::vsLevelOutTimesBase. When allowClimbRateChange is set and
// the current vertical speed already exceeds the requested rate in
// magnitude, the cruise phase adopts the current rate instead of first
// decelerating toward the requested one, prioritizing reaching the
// target altitude over first achieving the requested rate.
func vsLevelOutTimesBase(s0z, v0z, climbRate, targetAlt, accelup, acceldown float64, allowClimbRateChange bool) (t1, t2, t3, a1, a2 float64) {
	altDir := -1.0
	if targetAlt >= s0z {
		altDir = 1
	}
	climbRate = altDir * math.Abs(climbRate)
	if allowClimbRateChange {
		climbRate = altDir * math.Max(math.Abs(climbRate), math.Abs(v0z))
	}
	s := targetAlt - s0z
	a1 = acceldown
	if climbRate >= v0z {
		a1 = accelup
	}
	a2 = accelup
	if targetAlt >= s0z {
		a2 = acceldown
	}
	t1 = (climbRate - v0z) / a1

	if math.Abs(s) >= math.Abs(s1(v0z, a1, t1)+s3Decel(v1(v0z, a1, t1), a2)) {
		t2dur := (s - s1(v0z, a1, t1) - s3Decel(v1(v0z, a1, t1), a2)) / climbRate
		return t1, t1 + t2dur, t1 + t2dur + t3Decel(climbRate, a2), a1, a2
	}

	aa := 0.5 * a1 * (1 - a1/a2)
	bb := v0z * (1 - a1/a2)
	cc := -v0z*v0z/(2*a2) - s
	root1 := root(aa, bb, cc, 1)
	root2 := root(aa, bb, cc, -1)
	switch {
	case root1 < 0:
		t1 = root2
	case root2 < 0:
		t1 = root1
	default:
		t1 = math.Min(root1, root2)
	}
	return t1, t1, t1 + t3Decel(v1(v0z, a1, t1), a2), a1, a2
}

// vsLevelOutTimesRaw dispatches on the aircraft's current vertical-speed
// direction relative to targetAlt, shifting the clock so
// vsLevelOutTimesBase always sees a zero-crossing-free initial segment,
// following Kinematics::vsLevelOutTimes.
func vsLevelOutTimesRaw(s0z, v0z, climbRate, targetAlt, accelup, acceldown float64, allowClimbRateChange bool) (t1, t2, t3, a1, a2 float64) {
	sgnv := -1.0
	if v0z >= 0 {
		sgnv = 1
	}
	altDir := -1.0
	if targetAlt >= s0z {
		altDir = 1
	}
	s := targetAlt - s0z
	a1 = acceldown
	if targetAlt >= s0z {
		a1 = accelup
	}
	a2 = accelup
	if targetAlt >= s0z {
		a2 = acceldown
	}

	if sgnv == altDir || almostEquals(v0z, 0) {
		if math.Abs(s) >= math.Abs(s3Decel(v0z, a2)) {
			return vsLevelOutTimesBase(s0z, v0z, climbRate, targetAlt, accelup, acceldown, allowClimbRateChange)
		}
		ot1, ot2, ot3, oa1, oa2 := vsLevelOutTimesBase(s0z+s3Decel(v0z, a2), 0, climbRate, targetAlt, accelup, acceldown, allowClimbRateChange)
		off := -v0z / a2
		return off + ot1, off + ot2, off + ot3, oa1, oa2
	}
	ot1, ot2, ot3, oa1, oa2 := vsLevelOutTimesBase(s0z+s3Decel(v0z, a1), 0, climbRate, targetAlt, accelup, acceldown, allowClimbRateChange)
	off := -v0z / a1
	return off + ot1, off + ot2, off + ot3, oa1, oa2
}

// VsLevelOutTimes computes the three-phase timing of a level-out maneuver
// from (z0, vs0) to targetAlt, bounded by vertical-speed magnitude
// climbVs/descendVs (whichever applies to the direction of targetAlt) and
// acceleration magnitude accelUp/accelDown (the downward acceleration is
// passed on to the phase computation as -|accelDown|). allowClimbRateChange always
// behaves as true, matching the reference engine's public entry point.
func VsLevelOutTimes(z0, vs0, targetAlt, climbVs, descendVs, accelUp, accelDown float64) (levelOutTimes, error) {
	rate := climbVs
	if targetAlt < z0 {
		rate = descendVs
	}
	t1, t2, t3, a1, a2 := vsLevelOutTimesRaw(z0, vs0, rate, targetAlt, math.Abs(accelUp), -math.Abs(accelDown), true)
	return levelOutTimes{T1: t1, T2: t2, T3: t3, A1: a1, A2: a2}, nil
}

// VsLevelOut returns the altitude and vertical speed at time t into a
// level-out maneuver previously computed by VsLevelOutTimes, following
// Kinematics::vsLevelOutCalc.
func VsLevelOut(z0, vs0, targetAlt, t float64, lot levelOutTimes) (float64, float64) {
	switch {
	case t <= lot.T1:
		return z0 + s1(vs0, lot.A1, t), v1(vs0, lot.A1, t)
	case t <= lot.T2:
		cruiseVs := v1(vs0, lot.A1, lot.T1)
		return z0 + s1(vs0, lot.A1, lot.T1) + cruiseVs*(t-lot.T1), cruiseVs
	case t <= lot.T3:
		cruiseVs := v1(vs0, lot.A1, lot.T1)
		z2 := z0 + s1(vs0, lot.A1, lot.T1) + cruiseVs*(lot.T2-lot.T1)
		dt := t - lot.T2
		return z2 + s1(cruiseVs, lot.A2, dt), v1(cruiseVs, lot.A2, dt)
	default:
		return targetAlt, 0
	}
}
