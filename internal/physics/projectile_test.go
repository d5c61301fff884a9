package physics_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dragsim/internal/dynamo"
	"github.com/san-kum/dragsim/internal/integrators"
	"github.com/san-kum/dragsim/internal/physics"
)

var noOpts []physics.Option

func launch(speed, angle float64) dynamo.MotionState {
	return dynamo.MotionState{
		Velocity: dynamo.FromMagnitudeAngle(speed, angle),
	}
}

func baseball() physics.Parameters {
	p, err := physics.NewParameters(0.01, 1.2, 0.47, 0.145, 0.001, launch(40, 45), 10)
	Expect(err).NotTo(HaveOccurred())
	return p
}

var _ = Describe("Parameters", func() {
	It("derives the drag proportion from the raw inputs", func() {
		p := baseball()
		Expect(p.DragProportion()).To(BeNumerically("~", 0.01*1.2*0.47/2, 1e-15))
		Expect(p.Gravity()).To(Equal(physics.StandardGravity))
	})

	It("builds a consistent drag-free copy", func() {
		p := baseball()
		free := p.DragFree()

		Expect(free.DragProportion()).To(BeZero())
		Expect(free.CrossArea()).To(BeZero())
		Expect(free.FluidDensity()).To(BeZero())
		Expect(free.DragCoefficient()).To(BeZero())
		Expect(free.Mass()).To(Equal(p.Mass()))
		Expect(free.InitialConditions()).To(Equal(p.InitialConditions()))
		Expect(p.DragProportion()).NotTo(BeZero())
	})

	It("accepts a gravity override", func() {
		p, err := physics.NewParameters(0, 0, 0, 1, 0.01, launch(1, 0), 1, physics.WithGravity(1.62))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Gravity()).To(Equal(1.62))
	})

	DescribeTable("rejects invalid inputs",
		func(area, density, cd, mass, dt, end float64, x0 dynamo.MotionState, field string, opts []physics.Option) {
			_, err := physics.NewParameters(area, density, cd, mass, dt, x0, end, opts...)
			Expect(err).To(MatchError(dynamo.ErrInvalidParameter))

			var pe *dynamo.ParameterError
			Expect(err).To(BeAssignableToTypeOf(pe))
			Expect(err.(*dynamo.ParameterError).Field).To(Equal(field))
		},
		Entry("zero mass", 0.01, 1.2, 0.47, 0.0, 0.001, 10.0, launch(40, 45), "mass", noOpts),
		Entry("negative mass", 0.01, 1.2, 0.47, -1.0, 0.001, 10.0, launch(40, 45), "mass", noOpts),
		Entry("NaN mass", 0.01, 1.2, 0.47, math.NaN(), 0.001, 10.0, launch(40, 45), "mass", noOpts),
		Entry("zero dt", 0.01, 1.2, 0.47, 0.145, 0.0, 10.0, launch(40, 45), "delta_time", noOpts),
		Entry("negative dt", 0.01, 1.2, 0.47, 0.145, -0.001, 10.0, launch(40, 45), "delta_time", noOpts),
		Entry("zero ending time", 0.01, 1.2, 0.47, 0.145, 0.001, 0.0, launch(40, 45), "ending_time", noOpts),
		Entry("infinite ending time", 0.01, 1.2, 0.47, 0.145, 0.001, math.Inf(1), launch(40, 45), "ending_time", noOpts),
		Entry("negative cross area", -0.01, 1.2, 0.47, 0.145, 0.001, 10.0, launch(40, 45), "cross_area", noOpts),
		Entry("negative density", 0.01, -1.2, 0.47, 0.145, 0.001, 10.0, launch(40, 45), "fluid_density", noOpts),
		Entry("infinite drag coefficient", 0.01, 1.2, math.Inf(1), 0.145, 0.001, 10.0, launch(40, 45), "drag_coefficient", noOpts),
		Entry("NaN initial velocity", 0.01, 1.2, 0.47, 0.145, 0.001, 10.0, dynamo.MotionState{Velocity: dynamo.NewVec2(math.NaN(), 0)}, "initial.vx", noOpts),
		Entry("NaN gravity", 0.01, 1.2, 0.47, 0.145, 0.001, 10.0, launch(40, 45), "gravity", []physics.Option{physics.WithGravity(math.NaN())}),
		Entry("negative step cap", 0.01, 1.2, 0.47, 0.145, 0.001, 10.0, launch(40, 45), "max_steps", []physics.Option{physics.WithMaxSteps(-1)}),
	)

	It("computes quadratic drag opposing the velocity", func() {
		p, err := physics.NewParameters(1, 2, 1, 2, 0.01, launch(1, 0), 1)
		Expect(err).NotTo(HaveOccurred())

		// k = 1, k/m = 0.5, |v| = 5
		a := p.Acceleration(dynamo.MotionState{Velocity: dynamo.NewVec2(3, 4)})
		Expect(a.X).To(BeNumerically("~", -0.5*5*3, 1e-12))
		Expect(a.Y).To(BeNumerically("~", -physics.StandardGravity-0.5*5*4, 1e-12))
	})
})

var _ = Describe("Simulate", func() {
	It("matches the closed form without drag", func() {
		x0 := dynamo.MotionState{
			Position: dynamo.NewVec2(1, 2),
			Velocity: dynamo.FromMagnitudeAngle(25, 60),
		}
		p, err := physics.NewParameters(0, 0, 0, 1, 0.001, x0, 10)
		Expect(err).NotTo(HaveOccurred())

		traj, err := physics.Simulate(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(len(traj)).To(BeNumerically(">", 1))

		g := physics.StandardGravity
		for _, s := range traj {
			t := s.Time
			Expect(s.Velocity.X).To(Equal(x0.Velocity.X))
			Expect(s.Position.X).To(BeNumerically("~", x0.Position.X+x0.Velocity.X*t, 1e-6))
			Expect(s.Position.Y).To(BeNumerically("~", x0.Position.Y+x0.Velocity.Y*t-0.5*g*t*t, 1e-6))
			Expect(s.Velocity.Y).To(BeNumerically("~", x0.Velocity.Y-g*t, 1e-6))
		}
	})

	It("records strictly uniform time steps", func() {
		p := baseball()
		traj, err := physics.Simulate(p)
		Expect(err).NotTo(HaveOccurred())

		Expect(traj[0]).To(Equal(p.InitialConditions()))
		for i := 1; i < len(traj); i++ {
			Expect(traj[i].Time).To(Equal(traj[i-1].Time + p.DeltaTime()))
		}
	})

	It("ends at ground impact or the ending time", func() {
		for _, end := range []float64{0.5, 2, 10} {
			p, err := physics.NewParameters(0.01, 1.2, 0.47, 0.145, 0.001, launch(40, 45), end)
			Expect(err).NotTo(HaveOccurred())

			traj, err := physics.Simulate(p)
			Expect(err).NotTo(HaveOccurred())

			last, _ := traj.Last()
			Expect(last.Position.Y < 0 || last.Time >= end).To(BeTrue())
			for _, s := range traj[:len(traj)-1] {
				Expect(s.Position.Y).To(BeNumerically(">=", 0))
				Expect(s.Time).To(BeNumerically("<", end))
			}
		}
	})

	It("reproduces the symmetric 45 degree launch", func() {
		v := 20.0
		g := physics.StandardGravity
		p, err := physics.NewParameters(0, 0, 0, 1, 0.001, launch(v, 45), 10)
		Expect(err).NotTo(HaveOccurred())

		traj, err := physics.Simulate(p)
		Expect(err).NotTo(HaveOccurred())

		Expect(traj.MaxY()).To(BeNumerically("~", v*v/(4*g), 0.01))
		Expect(traj.MaxX()).To(BeNumerically("~", v*v/g, 0.05))
	})

	It("shortens the range as the drag coefficient grows", func() {
		prev := math.Inf(1)
		for _, cd := range []float64{0, 0.1, 0.25, 0.47, 1.0, 2.0} {
			p, err := physics.NewParameters(0.01, 1.2, cd, 0.145, 0.001, launch(40, 45), 10)
			Expect(err).NotTo(HaveOccurred())

			traj, err := physics.Simulate(p)
			Expect(err).NotTo(HaveOccurred())

			Expect(traj.MaxX()).To(BeNumerically("<", prev), "drag coefficient %v", cd)
			prev = traj.MaxX()
		}
	})

	It("flies the baseball scenario to ground impact below the vacuum apex", func() {
		traj, err := physics.Simulate(baseball())
		Expect(err).NotTo(HaveOccurred())

		last, _ := traj.Last()
		Expect(last.Position.Y).To(BeNumerically("<", 0))
		Expect(last.Time).To(BeNumerically("<", 10))
		Expect(traj.MaxY()).To(BeNumerically("<", 40*40/(4*physics.StandardGravity)))
		Expect(traj.MaxY()).To(BeNumerically(">", 0))
	})

	It("keeps a straight line with neither drag nor gravity", func() {
		p, err := physics.NewParameters(0, 0, 0, 1, 0.01, launch(3, 30), 1, physics.WithGravity(0))
		Expect(err).NotTo(HaveOccurred())

		traj, err := physics.Simulate(p)
		Expect(err).NotTo(HaveOccurred())

		for _, s := range traj {
			Expect(s.Velocity).To(Equal(p.InitialConditions().Velocity))
			Expect(s.Acceleration.X).To(BeZero())
			Expect(s.Acceleration.Y).To(BeZero())
		}
	})

	It("returns only the initial state when the ending time has passed", func() {
		x0 := launch(10, 45)
		x0.Time = 5
		p, err := physics.NewParameters(0.01, 1.2, 0.47, 0.145, 0.001, x0, 2)
		Expect(err).NotTo(HaveOccurred())

		traj, err := physics.Simulate(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj).To(HaveLen(1))
		Expect(traj[0]).To(Equal(x0))
	})

	It("takes one step before checking a below-ground start", func() {
		x0 := launch(10, 45)
		x0.Position = dynamo.NewVec2(0, -1)
		p, err := physics.NewParameters(0.01, 1.2, 0.47, 0.145, 0.001, x0, 10)
		Expect(err).NotTo(HaveOccurred())

		traj, err := physics.Simulate(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj).To(HaveLen(2))
	})

	It("returns the partial run when the step cap is hit", func() {
		p, err := physics.NewParameters(0.01, 1.2, 0.47, 0.145, 0.001, launch(40, 45), 10, physics.WithMaxSteps(100))
		Expect(err).NotTo(HaveOccurred())

		traj, err := physics.Simulate(p)
		Expect(err).To(MatchError(dynamo.ErrStepLimit))
		Expect(traj).To(HaveLen(101))
		Expect(traj[100].Position.Y).To(BeNumerically(">", 0))
	})

	It("only fails on the cap when it is actually reached", func() {
		// the worst-case bound is 10001 steps but the ball lands in under 5 s
		p, err := physics.NewParameters(0.01, 1.2, 0.47, 0.145, 0.001, launch(40, 45), 10, physics.WithMaxSteps(8000))
		Expect(err).NotTo(HaveOccurred())

		result, err := physics.SimulateContext(context.Background(), p)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Stopped).To(BeTrue())
		Expect(result.StepsTaken).To(BeNumerically("<", 8000))
	})

	It("reports metrics attached to the run", func() {
		m := &maxHeight{}
		result, err := physics.SimulateContext(context.Background(), baseball(), m)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Stopped).To(BeTrue())
		Expect(result.Metrics["max_height"]).To(Equal(result.Trajectory.MaxY()))
	})
})

var _ = Describe("Compare", func() {
	It("pairs the drag run with a longer drag-free run", func() {
		c, err := physics.Compare(baseball())
		Expect(err).NotTo(HaveOccurred())

		Expect(c.WithDrag[0]).To(Equal(c.WithoutDrag[0]))
		Expect(c.WithoutDrag.MaxX()).To(BeNumerically(">", c.WithDrag.MaxX()))
		Expect(c.WithoutDrag.MaxY()).To(BeNumerically(">", c.WithDrag.MaxY()))
	})

	It("agrees with a fourth-order reference at a fine step", func() {
		euler, err := physics.Compare(baseball())
		Expect(err).NotTo(HaveOccurred())
		rk4, err := physics.CompareWith(context.Background(), baseball(), integrators.NewRK4())
		Expect(err).NotTo(HaveOccurred())

		Expect(euler.WithDrag.MaxX()).To(BeNumerically("~", rk4.WithDrag.MaxX(), 0.01*rk4.WithDrag.MaxX()))
		Expect(euler.WithDrag.MaxY()).To(BeNumerically("~", rk4.WithDrag.MaxY(), 0.01*rk4.WithDrag.MaxY()))
		Expect(euler.WithoutDrag.MaxX()).To(BeNumerically("~", rk4.WithoutDrag.MaxX(), 0.01*rk4.WithoutDrag.MaxX()))
	})

	It("stops on a canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := physics.CompareContext(ctx, baseball())
		Expect(err).To(MatchError(dynamo.ErrCanceled))
	})
})

type maxHeight struct{ y float64 }

func (m *maxHeight) Name() string { return "max_height" }
func (m *maxHeight) Observe(s dynamo.MotionState) {
	if s.Position.Y > m.y {
		m.y = s.Position.Y
	}
}
func (m *maxHeight) Value() float64 { return m.y }
func (m *maxHeight) Reset()         { m.y = 0 }
