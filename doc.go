/*
Package torus approximates a parametric surface near a point with its
osculating torus.

Given the position and the first and second partial derivatives of a
surface F(u, v) at one point, Fit builds a torus that matches the surface's
position, tangent plane and principal curvatures there. The result carries:

  - the torus patch in its local frame, centered at the origin with its axis along +Z,
  - the rigid placement that moves it onto the surface,
  - second order polynomial maps between the surface parameters (u, v) and
    the torus parameters (m, n),
  - a certified bound on the distance between the surface and the torus over
    the sampled parameter rectangle.

The bound is a third order Taylor remainder and requires the caller to
supply bounds on the third partial derivatives of the surface over the
rectangle (Sample.M1 through Sample.M4).

Elliptic points are anchored on the outer equator of the torus, (m, n) = (0, 0).
Hyperbolic points are anchored on the inner equator, (m, n) = (0, π).

Sub package gaussmap splits the normals of a fitted patch by orientation
and latitude hemisphere, and glsdf evaluates fitted tori as signed distance
fields on the CPU or in GLSL.
*/
package torus
